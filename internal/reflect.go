// Package internal holds the helpers shared by the slist packages that
// are not part of the public API.
package internal

import "reflect"

// IsNil uses reflection to determine if an object is nil. Interfaces
// holding typed nil pointers, maps, slices, channels, and functions
// are nil.
func IsNil(in any) bool {
	v := reflect.ValueOf(in)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Invalid:
		return true
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
