package internal

import "reflect"

// IsNil reports whether val is nil, including typed nils held
// in an interface.
func IsNil(val any) bool {
	if val == nil {
		return true
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsStruct reports whether val is a struct or pointer to one.
func IsStruct(val any) bool {
	if val == nil {
		return false
	}
	t := reflect.TypeOf(val)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
