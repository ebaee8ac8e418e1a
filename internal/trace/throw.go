package trace

import "github.com/pkg/errors"

// Threading errors through every little parsing helper would add a lot of
// noise for what are all fatal conditions anyway. Instead, the helpers panic
// with a traceError, and the public decoders recover it into an error.

type traceError struct {
	error
}

// Panic with a traceError.
func fatalf(format string, args ...interface{}) {
	panic(traceError{errors.Errorf(format, args...)})
}

// HandleTracePanicRecover converts a recovered traceError back into an error.
// Any other panic is re-raised.
func HandleTracePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(traceError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
