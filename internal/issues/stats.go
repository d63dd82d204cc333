package issues

// SessionStats are facts derived from a history snapshot. They are recomputed
// from scratch on every request; nothing is cached incrementally.
type SessionStats struct {
	Count            int      `json:"count"`
	UniqueIssueTypes []string `json:"uniqueIssueTypes"`
	MaxSeverity      int      `json:"maxSeverity"`
}

// Stats derives session statistics from a history snapshot. Unique issue
// types keep first-seen order.
func Stats(history []IssueAnalysis) SessionStats {
	stats := SessionStats{Count: len(history)}

	seen := make(map[string]struct{}, len(history))
	for _, h := range history {
		if _, ok := seen[h.IssueType]; !ok {
			seen[h.IssueType] = struct{}{}
			stats.UniqueIssueTypes = append(stats.UniqueIssueTypes, h.IssueType)
		}
		if h.SeverityScore > stats.MaxSeverity {
			stats.MaxSeverity = h.SeverityScore
		}
	}
	return stats
}
