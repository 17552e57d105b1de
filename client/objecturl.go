package client

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// DefaultMaxObjectURLs caps the number of live display URLs per process.
const DefaultMaxObjectURLs = 64

// ObjectURLRegistry hands out display URLs backed by in-memory document
// bytes. The handle table is bounded, so every Create must be paired with a
// Revoke or repeated upload/close cycles exhaust the registry.
type ObjectURLRegistry struct {
	mu         sync.Mutex
	handles    map[string][]byte
	maxHandles int
}

func NewObjectURLRegistry(maxHandles int) *ObjectURLRegistry {
	if maxHandles <= 0 {
		maxHandles = DefaultMaxObjectURLs
	}
	return &ObjectURLRegistry{
		handles:    make(map[string][]byte),
		maxHandles: maxHandles,
	}
}

func (r *ObjectURLRegistry) Create(data []byte) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.handles) >= r.maxHandles {
		return "", fmt.Errorf("object URL registry exhausted (%d handles)", r.maxHandles)
	}

	url := "blob:" + uuid.NewString()
	buf := make([]byte, len(data))
	copy(buf, data)
	r.handles[url] = buf
	return url, nil
}

func (r *ObjectURLRegistry) Get(url string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.handles[url]
	return data, ok
}

// Revoke releases the handle. Revoking an unknown URL is a no-op.
func (r *ObjectURLRegistry) Revoke(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handles, url)
}

func (r *ObjectURLRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}
