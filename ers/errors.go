package ers

import "errors"

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Join is a wrapper around errors.Join.
func Join(errs ...error) error { return errors.Join(errs...) }

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error. ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
