package storage

import (
	"context"
	"io"
)

// Source is a read-only set of named quiz documents.
type Source interface {
	List(ctx context.Context) ([]string, error) // names, unordered
	Open(name string) (io.ReadCloser, error)
}
