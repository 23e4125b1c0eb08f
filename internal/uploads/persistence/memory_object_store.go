package persistence

import (
	"context"
	"fmt"
	"sync"

	"greenhouse-server/internal/uploads/usecases"
)

// MemoryObjectStore keeps uploads in process memory. Production deployments
// swap in a bucket-backed implementation behind the same port.
type MemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string]storedObject
}

type storedObject struct {
	contentType string
	data        []byte
}

func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{
		objects: make(map[string]storedObject),
	}
}

var _ usecases.ObjectStore = (*MemoryObjectStore)(nil)

func (s *MemoryObjectStore) Put(_ context.Context, key string, contentType string, data []byte) (string, error) {
	stored := storedObject{
		contentType: contentType,
		data:        make([]byte, len(data)),
	}
	copy(stored.data, data)

	s.mu.Lock()
	s.objects[key] = stored
	s.mu.Unlock()

	return fmt.Sprintf("/v1/uploads/%s", key), nil
}

func (s *MemoryObjectStore) Get(_ context.Context, key string) ([]byte, string, error) {
	s.mu.RLock()
	stored, ok := s.objects[key]
	s.mu.RUnlock()

	if !ok {
		return nil, "", usecases.ErrObjectNotFound
	}

	data := make([]byte, len(stored.data))
	copy(data, stored.data)
	return data, stored.contentType, nil
}
