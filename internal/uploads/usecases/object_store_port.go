package usecases

//go:generate mockgen -source=object_store_port.go -destination=../../../test/unit/doubles/uploads/usecases/object_store_port_mock.go -package=usecases

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectStore is the storage boundary for uploaded photos. Put returns the
// stable URL under which the object can be fetched.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)
	Get(ctx context.Context, key string) ([]byte, string, error)
}
