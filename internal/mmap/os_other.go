//go:build !unix && !windows

package mmap

import "errors"

var errUnsupported = errors.New("mmap: anonymous mappings are not supported on this platform")

func pageSize() int {
	return 4096
}

func osMapAnon(size uintptr) ([]byte, func([]byte) error, error) {
	return nil, nil, errUnsupported
}

func osUnmapAnon(data []byte) error {
	return errUnsupported
}

func osAdvise(data []byte, pattern AccessPattern) error {
	return nil
}
