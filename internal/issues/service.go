package issues

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bytebender77/AI-CitySense/internal/llm"
	"github.com/bytebender77/AI-CitySense/internal/media"
	"github.com/bytebender77/AI-CitySense/internal/metrics"
	"github.com/bytebender77/AI-CitySense/internal/telemetry"
)

// Service orchestrates one analysis: validate the submission, build the
// request against a history snapshot, call the inference backend once, parse
// strictly, and append to history only on success.
type Service struct {
	History       *HistoryStore
	LLM           llm.Client
	MaxVideoBytes int64

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService constructs a Service.
func NewService(history *HistoryStore, client llm.Client, maxVideoBytes int64) *Service {
	return &Service{
		History:       history,
		LLM:           client,
		MaxVideoBytes: maxVideoBytes,
		inFlight:      make(map[string]struct{}),
	}
}

// CreateSession registers a new empty session and returns its ID.
func (s *Service) CreateSession(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.History.CreateSession(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

// Snapshot returns the session's history, oldest first.
func (s *Service) Snapshot(ctx context.Context, sessionID string) ([]IssueAnalysis, error) {
	return s.History.Snapshot(ctx, sessionID)
}

// Analyze runs one analysis for the session and returns the new result along
// with the updated history snapshot. On any failure the history is left
// untouched so the caller can retry without losing state.
func (s *Service) Analyze(ctx context.Context, sessionID string, sub Submission) (IssueAnalysis, []IssueAnalysis, error) {
	if !sub.HasInput() {
		return IssueAnalysis{}, nil, ErrNoInput
	}
	if sub.Video != "" && media.DecodedSize(sub.Video) > s.MaxVideoBytes {
		return IssueAnalysis{}, nil, ErrVideoTooLarge
	}
	if sub.Location != nil && !sub.Location.Valid() {
		return IssueAnalysis{}, nil, ErrInvalidLocation
	}

	if !s.acquire(sessionID) {
		return IssueAnalysis{}, nil, ErrAnalysisInFlight
	}
	defer s.release(sessionID)

	snapshot, err := s.History.Snapshot(ctx, sessionID)
	if err != nil {
		return IssueAnalysis{}, nil, err
	}

	req := BuildRequest(sub, snapshot)

	metrics.AnalysesInFlight.Inc()
	start := time.Now()
	raw, err := s.LLM.Analyze(ctx, req)
	metrics.AnalysesInFlight.Dec()
	if err != nil {
		s.finish(metrics.ResultUnavailable, start)
		telemetry.Error("analysis.call_failed", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return IssueAnalysis{}, nil, ErrUnavailable
	}

	result, err := ParseResult(raw)
	if err != nil {
		s.finish(metrics.ResultParseError, start)
		// Full detail stays in the logs; the caller only sees the generic error.
		telemetry.Error("analysis.parse_failed", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return IssueAnalysis{}, nil, err
	}

	updated, err := s.History.Append(ctx, sessionID, result)
	if err != nil {
		s.finish(metrics.ResultUnavailable, start)
		return IssueAnalysis{}, nil, err
	}

	s.finish(metrics.ResultCompleted, start)
	telemetry.Info("analysis.completed", map[string]any{
		"session_id":     sessionID,
		"issue_type":     result.IssueType,
		"severity_score": result.SeverityScore,
		"history_len":    len(updated),
	})
	return result, updated, nil
}

func (s *Service) finish(result string, start time.Time) {
	metrics.AnalysesTotal.WithLabelValues(result).Inc()
	metrics.AnalysisDurationSeconds.WithLabelValues(result).Observe(time.Since(start).Seconds())
}

// acquire marks the session as having a request in flight. The presenter
// contract allows one outstanding analysis per session.
func (s *Service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
