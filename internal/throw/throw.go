// Package throw carries invariant violations out of deeply nested geometry
// code.
//
// Threading errors through every sweep and clipping step would add a lot of
// noise to code that almost never fails. Instead, the algorithms panic with a
// *GeometryError, and the public API recovers it into an ordinary error.
package throw

import "github.com/pkg/errors"

type GeometryError struct {
	cause error
}

func (e *GeometryError) Error() string { return e.cause.Error() }
func (e *GeometryError) Unwrap() error { return e.cause }

// Panic with a GeometryError.
func Fatalf(format string, args ...interface{}) {
	panic(&GeometryError{errors.Errorf(format, args...)})
}

// Wrap an error raised by a third party backend so that it is recovered like
// one of our own.
func Wrap(err error, message string) {
	panic(&GeometryError{errors.Wrap(err, message)})
}

// Convert a recovered value into an error. Only GeometryErrors are converted;
// anything else is a real bug and panics again.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(*GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}

// Run f, converting a GeometryError panic into the returned error.
func Catch(f func()) (err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	f()
	return nil
}
