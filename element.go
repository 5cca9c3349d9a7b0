package stdvec

import (
	"reflect"
	"sync"
)

// elemChecks caches the verdict per element type; a nil value means the type
// is accepted.
var elemChecks sync.Map // reflect.Type -> error

// checkElem verifies that T can live in raw, GC-invisible memory and be
// relocated with a byte copy.
func checkElem[T any]() error {
	t := reflect.TypeFor[T]()
	if v, ok := elemChecks.Load(t); ok {
		err, _ := v.(error)
		return err
	}

	var err error
	if t.Size() == 0 {
		err = &ElementTypeError{Type: t, Reason: "zero-size elements cannot be addressed"}
	} else if reason := rawReason(t); reason != "" {
		err = &ElementTypeError{Type: t, Reason: reason}
	}

	if err == nil {
		elemChecks.Store(t, nil)
	} else {
		elemChecks.Store(t, err)
	}
	return err
}

func rawReason(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.UnsafePointer:
		return ""
	case reflect.Array:
		return rawReason(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if reason := rawReason(f.Type); reason != "" {
				return "field " + f.Name + ": " + reason
			}
		}
		return ""
	case reflect.Pointer:
		return "Go pointers are not tracked in raw buffers, use unsafe.Pointer or uintptr for foreign addresses"
	default:
		return t.Kind().String() + " values are managed by the Go runtime"
	}
}
