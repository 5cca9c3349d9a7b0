package stdvec

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument is returned when an index, count or capacity is out
	// of range, or the element type cannot live in raw memory.
	ErrInvalidArgument = errors.New("stdvec: invalid argument")
	// ErrOutOfMemory is returned when a memory space denies a non-zero request.
	ErrOutOfMemory = errors.New("stdvec: out of memory")
	// ErrInvalidOperation is returned for operations a view does not support.
	ErrInvalidOperation = errors.New("stdvec: invalid operation")
)

// ArgumentError identifies the offending parameter of a rejected call.
//
// It unwraps to ErrInvalidArgument.
type ArgumentError struct {
	Param  string
	Value  int64
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("stdvec: invalid argument %s=%d: %s", e.Param, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// AllocError reports a failed buffer allocation.
//
// It unwraps to ErrOutOfMemory and to the memory space's own error (if any),
// so both errors.Is(err, ErrOutOfMemory) and checks against space-specific
// sentinels succeed.
type AllocError struct {
	Bytes uint64
	cause error
}

func (e *AllocError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("stdvec: out of memory allocating %d bytes", e.Bytes)
	}
	return fmt.Sprintf("stdvec: out of memory allocating %d bytes: %v", e.Bytes, e.cause)
}

func (e *AllocError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrOutOfMemory}
	}
	return []error{ErrOutOfMemory, e.cause}
}

// ElementTypeError reports an element type that cannot be stored as a raw,
// relocatable value.
//
// It unwraps to ErrInvalidArgument.
type ElementTypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *ElementTypeError) Error() string {
	return fmt.Sprintf("stdvec: element type %v not supported: %s", e.Type, e.Reason)
}

func (e *ElementTypeError) Unwrap() error { return ErrInvalidArgument }

func argError(param string, value int64, reason string) error {
	return &ArgumentError{Param: param, Value: value, Reason: reason}
}
