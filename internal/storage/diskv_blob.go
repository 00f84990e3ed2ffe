package storage

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBlobStore keeps each blob as a file under a base directory.
type DiskvBlobStore struct {
	d *diskv.Diskv
}

func OpenDiskv(basePath string) (*DiskvBlobStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: diskv base path required")
	}
	return &DiskvBlobStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, ".tmp"),
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskvBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (s *DiskvBlobStore) Set(_ context.Context, key string, value []byte) error {
	return s.d.Write(key, value)
}
