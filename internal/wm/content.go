package wm

import (
	"reflect"
	"unsafe"
)

// ChildrenProp names the nested-content prop. It never takes part in
// singleton matching.
const ChildrenProp = "children"

// Props maps prop names to values.
type Props map[string]any

// Content is the caller-supplied payload of a window. The manager treats it
// as opaque apart from singleton matching.
type Content interface {
	Kind() string
	Props() Props
}

// Element is a plain Content value for callers without a dedicated type.
type Element struct {
	Type  string
	Attrs Props
}

// Kind implements Content.
func (e Element) Kind() string { return e.Type }

// Props implements Content.
func (e Element) Props() Props { return e.Attrs }

// Equivalent reports whether two contents describe the same singleton window:
// same kind and pairwise shallow-equal props, children excluded.
func Equivalent(a, b Content) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return ShallowEqualProps(a.Props(), b.Props())
}

// ShallowEqualProps compares two prop sets key by key with ShallowEqual.
func ShallowEqualProps(a, b Props) bool {
	count := 0
	for key, av := range a {
		if key == ChildrenProp {
			continue
		}
		bv, ok := b[key]
		if !ok || !ShallowEqual(av, bv) {
			return false
		}
		count++
	}
	for key := range b {
		if key != ChildrenProp {
			count--
		}
	}
	return count == 0
}

// ShallowEqual compares two prop values without descending into them.
// Comparable values use ==. Maps, pointers and channels compare by
// reference, slices by backing array and length. Functions compare by
// closure identity, so the same func value passed twice is equal while two
// closures over the same code are not. Any other non-comparable value is
// never equal.
func ShallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Func:
		return funcWord(va) == funcWord(vb)
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// funcWord returns the closure pointer held by a func value. Value.Pointer
// reports the code pointer, which closures created from one literal share.
func funcWord(v reflect.Value) unsafe.Pointer {
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return *(*unsafe.Pointer)(p.UnsafePointer())
}
