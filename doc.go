// Package stdvec provides a growable, contiguous vector whose in-memory
// header is byte-for-byte compatible with a native std::vector<T>.
//
// A Vector is exactly three pointers (first, last, end), so a *Vector can be
// placed inside a foreign struct, passed to native code, or laid over a
// header native code owns. Elements live in raw memory obtained from a
// pluggable memory space and are relocated with byte copies.
//
// # Quick Start
//
//	v := stdvec.New[int32]()
//	defer v.Free()
//
//	_ = v.Add(3)
//	_ = v.Add(1)
//	_ = v.Add(2)
//	stdvec.Sort(v)               // [1 2 3]
//	i := stdvec.BinarySearch(v, 2) // 1
//
// # Type parameters
//
// Vector[T, M, D] takes the element type, a memspace.Space and a
// dispose.Policy. Both strategies are used through their zero values and
// add nothing to the header:
//
//	var buf stdvec.Vector[Handle, memspace.Anon, dispose.Method[Handle, *Handle]]
//
// Plain[T] is the common case: Go heap, no disposal.
//
// Element types must be fixed-size raw values: booleans, numbers, uintptr,
// unsafe.Pointer, and arrays or structs built from those. Anything the Go
// runtime manages (strings, slices, maps, interfaces, Go pointers) is
// rejected with ErrInvalidArgument on the first allocation.
//
// # Sizes beyond int
//
// The methods on *Vector take and return int. Long() returns the same
// operations over int64 for vectors that can exceed the range of int.
//
// # Errors
//
// Argument faults unwrap to ErrInvalidArgument (as *ArgumentError, naming the
// parameter), allocation failures to ErrOutOfMemory (as *AllocError, also
// wrapping the memory space's own error), and unsupported calls to
// ErrInvalidOperation. Validation happens before any mutation.
//
// # Configuration
//
// Logging, metrics and the memory budget are process-wide and set with
// Configure:
//
//	_ = stdvec.Configure(
//		stdvec.WithLogger(stdvec.NewTextLogger(slog.LevelDebug)),
//		stdvec.WithMemoryBudget(64<<20),
//	)
//
// A Vector is not safe for concurrent use.
package stdvec
