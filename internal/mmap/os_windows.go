//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func pageSize() int {
	return windows.Getpagesize()
}

func osMapAnon(size uintptr) ([]byte, func([]byte) error, error) {
	// VirtualAlloc with MEM_COMMIT uses demand-paging: pages are only backed
	// by physical memory when first accessed, similar to Unix mmap behavior.
	addr, err := windows.VirtualAlloc(0, size,
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return data, osUnmapAnon, nil
}

func osUnmapAnon(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	// VirtualFree with MEM_RELEASE frees the entire region
	return windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}

func osAdvise(data []byte, pattern AccessPattern) error {
	// Windows does not have a direct equivalent to madvise.
	_ = data
	_ = pattern
	return nil
}
