package advanced

import "github.com/pkg/errors"

// Threading errors through the ring surgery would add a lot of noise for
// conditions that only arise from malformed buffers. Instead, we panic with a
// TriangulateError, and the public API recovers to convert to an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error { return e.error }

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Convert a recovered TriangulateError back into an error. Any other panic is
// a real bug and is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
