package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryBlob struct {
	data        []byte
	name        string
	contentType string
}

// MemoryBlobs is a BlobStore backed by a map.
type MemoryBlobs struct {
	mu    sync.RWMutex
	files map[string]memoryBlob
}

func NewMemoryBlobs() *MemoryBlobs {
	return &MemoryBlobs{files: make(map[string]memoryBlob)}
}

func (m *MemoryBlobs) Put(_ context.Context, data []byte, name, contentType string) (string, error) {
	if contentType == "" {
		contentType = defaultContentType
	}
	id := uuid.NewString()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.mu.Lock()
	m.files[id] = memoryBlob{data: stored, name: name, contentType: contentType}
	m.mu.Unlock()
	return id, nil
}

func (m *MemoryBlobs) Get(_ context.Context, id string) ([]byte, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[id]
	if !ok {
		return nil, "", ErrNotFound
	}
	return f.data, f.contentType, nil
}

func (m *MemoryBlobs) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[id]; !ok {
		return ErrNotFound
	}
	delete(m.files, id)
	return nil
}
