package storage

import (
	"math/rand"
	"path"
	"strings"
	"sync"

	"github.com/serenoapp/server/domain/repositories"
)

// MemoryStore is an in-memory AudioStore for tests.
type MemoryStore struct {
	mu        sync.RWMutex
	files     map[string][]byte
	urlPrefix string
}

var _ repositories.AudioStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store serving URLs under
// "/uploads".
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files:     make(map[string][]byte),
		urlPrefix: "/uploads",
	}
}

func (s *MemoryStore) Exists(filename string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.files[filename]
	return ok
}

func (s *MemoryStore) Save(filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filename] = data
	return nil
}

func (s *MemoryStore) RandomExisting() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var files []string
	for name := range s.files {
		if strings.HasSuffix(name, ".mp3") {
			files = append(files, name)
		}
	}
	if len(files) == 0 {
		return "", false
	}
	return files[rand.Intn(len(files))], true
}

func (s *MemoryStore) URL(filename string) string {
	return path.Join(s.urlPrefix, filename)
}

// Len returns the number of stored files.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
