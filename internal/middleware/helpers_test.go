package middleware

import (
	"sync"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) all() []*model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.LogEntry(nil), s.entries...)
}
