package issues

import (
	"context"
	"sync"
)

// HistoryStore keeps per-session analysis history in memory and is safe for
// concurrent use. History is append-only for the lifetime of the process;
// there is no update or delete.
type HistoryStore struct {
	mu        sync.RWMutex
	histories map[string][]IssueAnalysis
}

// NewHistoryStore constructs a HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		histories: make(map[string][]IssueAnalysis),
	}
}

// CreateSession registers an empty history under the given ID.
func (s *HistoryStore) CreateSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.histories[sessionID]; !ok {
		s.histories[sessionID] = nil
	}
	return nil
}

// Snapshot returns a copy of the session's history, oldest first. Callers may
// read it freely without holding any lock.
func (s *HistoryStore) Snapshot(ctx context.Context, sessionID string) ([]IssueAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, ok := s.histories[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return append([]IssueAnalysis(nil), history...), nil
}

// Append adds one result to the session's history and returns the new
// snapshot. The stored slice is replaced, never mutated in place, so earlier
// snapshots stay valid.
func (s *HistoryStore) Append(ctx context.Context, sessionID string, result IssueAnalysis) ([]IssueAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	history, ok := s.histories[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	updated := make([]IssueAnalysis, 0, len(history)+1)
	updated = append(updated, history...)
	updated = append(updated, result)
	s.histories[sessionID] = updated
	return append([]IssueAnalysis(nil), updated...), nil
}
