// Package ers provides the small set of error tools used by slist:
// constant sentinel errors, wrapping, and helpers for converting
// invariant panics back into errors.
//
// The package has no dependencies outside of the standard library.
package ers

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is,
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Ok reports true for the empty Error, which is treated as a nil
// error by IsOk.
func (e Error) Ok() bool { return e == "" }

// Satisfies the Is() interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}
