package storage

import (
	"context"
	"errors"
	"sync"

	"gaharness/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	summaries   map[string]model.RunSummary
	order       []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.summaries = make(map[string]model.RunSummary)
	s.order = nil
	return nil
}

func (s *MemoryStore) SaveSummary(_ context.Context, summary model.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	if _, ok := s.summaries[summary.ID]; !ok {
		s.order = append(s.order, summary.ID)
	}
	s.summaries[summary.ID] = cloneSummary(summary)
	return nil
}

func (s *MemoryStore) GetSummary(_ context.Context, id string) (model.RunSummary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[id]
	if !ok {
		return model.RunSummary{}, false, nil
	}
	return cloneSummary(summary), true, nil
}

func (s *MemoryStore) ListSummaries(_ context.Context, batchID string) ([]model.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RunSummary, 0, len(s.order))
	for _, id := range s.order {
		summary := s.summaries[id]
		if batchID != "" && summary.BatchID != batchID {
			continue
		}
		out = append(out, cloneSummary(summary))
	}
	return out, nil
}

func cloneSummary(s model.RunSummary) model.RunSummary {
	s.RunBest = append([]float64(nil), s.RunBest...)
	return s
}
