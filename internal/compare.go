package internal

import "reflect"

// SameValue reports whether a and b are the same value by identity: == for
// comparable values, the same backing pointer for slices, maps, pointers and
// channels. Functions are only the same when both are nil, Go offers no way to
// tell two closures apart.
func SameValue(a, b any) bool {
	return sameReflect(reflect.ValueOf(a), reflect.ValueOf(b))
}

func sameReflect(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Slice:
		return a.Len() == b.Len() && a.Pointer() == b.Pointer()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return sameReflect(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := range a.NumField() {
			if !sameReflect(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range a.Len() {
			if !sameReflect(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	default:
		return a.Equal(b)
	}
}

// PropsChanged shallow-compares component props. Maps are compared key by key
// and structs field by field, in both cases ignoring the children.
func PropsChanged(old, next any) bool {
	if om, ok := old.(PropMap); ok {
		nm, ok := next.(PropMap)
		if !ok {
			return true
		}
		return mapChanged(om, nm)
	}

	a, b := reflect.ValueOf(old), reflect.ValueOf(next)
	if a.IsValid() && b.IsValid() && a.Type() == b.Type() && a.Kind() == reflect.Struct {
		for i := range a.NumField() {
			if a.Type().Field(i).Name == "Children" {
				continue
			}
			if !sameReflect(a.Field(i), b.Field(i)) {
				return true
			}
		}
		return false
	}

	return !SameValue(old, next)
}

func mapChanged(old, next PropMap) bool {
	for k, v := range next {
		if k == "children" {
			continue
		}
		if ov, ok := old[k]; !ok || !SameValue(ov, v) {
			return true
		}
	}

	for k := range old {
		if _, ok := next[k]; !ok && k != "children" {
			return true
		}
	}

	return false
}
