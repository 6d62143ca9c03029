package session

import (
	"context"
	"sync"
)

type memoryStorage struct {
	mu     sync.Mutex
	record *string
}

// NewMemory returns a Storage that lives as long as the process.
func NewMemory() Storage {
	return &memoryStorage{}
}

func (s *memoryStorage) Load(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return "", ErrNoRecord
	}
	return *s.record, nil
}

func (s *memoryStorage) Save(ctx context.Context, record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = &record
	return nil
}

func (s *memoryStorage) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = nil
	return nil
}

func (s *memoryStorage) Close() error { return nil }
