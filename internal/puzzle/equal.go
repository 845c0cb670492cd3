package puzzle

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equal reports whether an actual answer matches the expected one.
//
// Values are compared with cmp.Equal. Two scalars of different types (an
// int64 answer against an int decoded from YAML, or a number against its
// string form) match when they print identically.
func Equal(actual, expected any) (eq bool) {
	defer func() {
		// cmp panics on unexported struct fields.
		if recover() != nil {
			eq = reflect.DeepEqual(actual, expected)
		}
	}()

	if cmp.Equal(actual, expected) {
		return true
	}
	if isScalar(actual) && isScalar(expected) {
		return fmt.Sprint(actual) == fmt.Sprint(expected)
	}
	return false
}

// diff returns a readable diff for composite values of the same type,
// or "" when no useful diff exists.
func diff(expected, actual any) (d string) {
	defer func() {
		if recover() != nil {
			d = ""
		}
	}()

	if expected == nil || actual == nil || reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return ""
	}
	if isScalar(actual) {
		return ""
	}
	return cmp.Diff(expected, actual)
}

func isScalar(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}
