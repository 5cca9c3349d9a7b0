package stdvec_test

import (
	"errors"
	"fmt"
	"log"
	"unsafe"

	"github.com/hupe1980/stdvec"
	"github.com/hupe1980/stdvec/dispose"
	"github.com/hupe1980/stdvec/memspace"
)

func Example() {
	v := stdvec.New[int32]()
	defer v.Free()

	for _, x := range []int32{1, 2, 3} {
		if err := v.Add(x); err != nil {
			log.Fatal(err)
		}
	}
	v.SortFunc(func(a, b int32) int { return int(b - a) })

	fmt.Println(v.ToSlice())
	// Output: [3 2 1]
}

func ExampleBinarySearch() {
	v, err := stdvec.Of[int32](1, 3, 5, 7)
	if err != nil {
		log.Fatal(err)
	}
	defer v.Free()

	fmt.Println(stdvec.BinarySearch(v, 5))
	fmt.Println(^stdvec.BinarySearch(v, 4))
	// Output:
	// 2
	// 2
}

func ExampleVector_InsertRange() {
	v, err := stdvec.Of[int32](1, 2, 3)
	if err != nil {
		log.Fatal(err)
	}
	defer v.Free()

	if err := v.InsertRange(1, v); err != nil {
		log.Fatal(err)
	}
	fmt.Println(v.ToSlice())
	// Output: [1 1 2 3 2 3]
}

type slot struct {
	id uint32
}

func (s *slot) Dispose() { fmt.Println("release", s.id) }

func ExampleVector_RemoveAt() {
	var v stdvec.Vector[slot, memspace.Heap, dispose.Method[slot, *slot]]
	defer v.Free()

	_ = v.AddSlice([]slot{{1}, {2}, {3}})
	if err := v.RemoveAt(1); err != nil {
		log.Fatal(err)
	}
	fmt.Println(v.Len())
	// Output:
	// release 2
	// 2
	// release 1
	// release 3
}

func ExampleVector_SetCapacity() {
	v, _ := stdvec.Of[int32](1, 2, 3)
	defer v.Free()

	err := v.SetCapacity(2)
	var argErr *stdvec.ArgumentError
	fmt.Println(errors.Is(err, stdvec.ErrInvalidArgument), errors.As(err, &argErr) && argErr.Param == "capacity")
	fmt.Println(v.ToSlice())
	// Output:
	// true true
	// [1 2 3]
}

func ExampleOverlay() {
	// A foreign struct that embeds a native vector header.
	type inventory struct {
		Items [3]uintptr
		Gold  uint32
	}
	var inv inventory

	items, err := stdvec.Overlay[uint32, memspace.Heap, dispose.None[uint32]](unsafe.Pointer(&inv.Items))
	if err != nil {
		log.Fatal(err)
	}
	defer items.Free()

	_ = items.AddSlice([]uint32{101, 102})
	fmt.Println(items.Len(), inv.Items[1]-inv.Items[0])
	// Output: 2 8
}
