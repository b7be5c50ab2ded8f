package cursorStore

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"
)

type MemoryCursorStore struct {
	mu      sync.RWMutex
	cursors map[string]*EventCursor
}

func NewMemoryCursorStore() *MemoryCursorStore {
	return &MemoryCursorStore{cursors: make(map[string]*EventCursor)}
}

func (s *MemoryCursorStore) GetCursor(ctx context.Context, key string) (uint64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cursors[key]
	if !ok {
		return 0, false, nil
	}
	return c.LastProcessedBlock, true, nil
}

func (s *MemoryCursorStore) SetCursor(ctx context.Context, cursor *EventCursor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	existing, ok := s.cursors[cursor.Key]
	if !ok {
		c := *cursor
		c.CreatedAt, c.UpdatedAt = now, now
		s.cursors[cursor.Key] = &c
		return nil
	}
	if cursor.LastProcessedBlock >= existing.LastProcessedBlock {
		existing.LastProcessedBlock = cursor.LastProcessedBlock
		existing.UpdatedAt = now
	}
	return nil
}

func (s *MemoryCursorStore) ListCursors(ctx context.Context) ([]*EventCursor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*EventCursor, 0, len(s.cursors))
	for _, c := range s.cursors {
		cp := *c
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *EventCursor) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out, nil
}
