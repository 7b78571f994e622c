package ers

import "fmt"

// IsOk returns true when the error is nil, and false otherwise. It
// should always be inlined, and mostly exists for clarity at call
// sites in bool/IsOk check relevant contexts.
func IsOk(err error) bool {
	switch e := err.(type) {
	case nil:
		return true
	case interface{ Ok() bool }:
		return e.Ok()
	default:
		return false
	}
}

// Wrap annotates an error with the (fmt.Sprint formatted)
// arguments. The output is "<annotation>: <err>" and unwraps to err.
// Wrap returns nil when err is nil.
func Wrap(err error, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) == 0 {
		return err
	}

	return fmt.Errorf("%s: %w", fmt.Sprint(args...), err)
}
