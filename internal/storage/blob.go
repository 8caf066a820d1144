package storage

import (
	"errors"
	"io"
)

var ErrOutsideRoot = errors.New("path is outside the store root")

type BlobStore interface {
	List() ([]string, error)
	Open(name string) (io.ReadCloser, error)
}
