package ers

import "fmt"

// Invariant panics with an error rooted in ErrInvariantViolation when
// the condition is false. The arguments annotate the error as with
// NewInvariantViolation.
func Invariant(cond bool, args ...any) {
	if !cond {
		panic(NewInvariantViolation(args...))
	}
}

// NewInvariantViolation creates a new error object, which always
// includes ErrInvariantViolation, and any errors passed as arguments.
func NewInvariantViolation(args ...any) error {
	switch len(args) {
	case 0:
		return ErrInvariantViolation
	case 1:
		switch ei := args[0].(type) {
		case error:
			return Join(ei, ErrInvariantViolation)
		case string:
			return Join(New(ei), ErrInvariantViolation)
		case func() error:
			return Join(ei(), ErrInvariantViolation)
		default:
			return Join(fmt.Errorf("%v", args[0]), ErrInvariantViolation)
		}
	default:
		errs := make([]error, 0, len(args)+1)
		rest := make([]any, 0, len(args))
		for _, arg := range args {
			if err, ok := arg.(error); ok {
				errs = append(errs, err)
				continue
			}
			rest = append(rest, arg)
		}
		if len(rest) > 0 {
			errs = append(errs, New(fmt.Sprint(rest...)))
		}
		return Join(append(errs, ErrInvariantViolation)...)
	}
}

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return Join(err, ErrRecoveredPanic)
	case string:
		return Join(New(err), ErrRecoveredPanic)
	default:
		return Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}
