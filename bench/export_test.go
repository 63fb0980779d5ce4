package bench

import "errors"

// asGeneratorError reports, via errors.As, whether err is or wraps a
// *GeneratorError, storing it in target.
func asGeneratorError(err error, target **GeneratorError) bool {
	return errors.As(err, target)
}
