package storage

import (
	"fmt"
	"strings"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendDiskv  Backend = "diskv"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendDiskv, BackendFile, BackendMemory:
		return true
	default:
		return false
	}
}

// Open builds the blob store for backend. The returned close func is never nil.
func Open(backend Backend, path string) (BlobStore, func() error, error) {
	noop := func() error { return nil }
	switch Backend(strings.ToLower(string(backend))) {
	case BackendSQLite, "":
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendDiskv:
		s, err := OpenDiskv(path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case BackendFile:
		s, err := NewFileBlobStore(path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case BackendMemory:
		return NewMemoryBlobStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
