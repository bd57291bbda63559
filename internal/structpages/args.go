package structpages

import (
	"fmt"
	"reflect"
)

// argRegistry holds the values passed to MountPages, keyed by their type.
// Page methods receive them by declaring a parameter of that type.
type argRegistry map[reflect.Type]reflect.Value

func (args argRegistry) addArg(v any) error {
	if v == nil {
		return nil
	}
	typ := reflect.TypeOf(v)
	if _, ok := args[typ]; ok {
		return fmt.Errorf("duplicate type %s in args registry", typ)
	}
	args[typ] = reflect.ValueOf(v)
	return nil
}

func (args argRegistry) getArg(want reflect.Type) (reflect.Value, bool) {
	if v, ok := args[want]; ok {
		return v, true
	}
	// *T registered, T wanted
	if v, ok := args[reflect.PointerTo(want)]; ok {
		return v.Elem(), true
	}
	// T registered, *T wanted: hand out a copy, registered values are not addressable
	if want.Kind() == reflect.Ptr {
		if v, ok := args[want.Elem()]; ok {
			ptr := reflect.New(want.Elem())
			ptr.Elem().Set(v)
			return ptr, true
		}
	}
	if want.Kind() == reflect.Interface {
		for t, v := range args {
			if t.Implements(want) {
				return v, true
			}
		}
	}
	return reflect.Value{}, false
}
