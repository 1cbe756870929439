package helpers

import "reflect"

// StrPanic panics with panicMessage if s is empty; otherwise returns s.
// Used by constructors for required strings such as the registry hash name.
func StrPanic(s string, panicMessage string) string {
	if s == "" {
		panic(panicMessage)
	}
	return s
}

// NilPanic panics with panicMessage if v is nil, including typed nils
// (pointer, func, map, slice, chan, interface); otherwise returns v unchanged.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// PositivePanic panics with panicMessage if n is not greater than zero.
func PositivePanic[T ~int | ~int64](n T, panicMessage string) T {
	if n <= 0 {
		panic(panicMessage)
	}
	return n
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
