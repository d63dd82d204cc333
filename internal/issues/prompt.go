package issues

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/bytebender77/AI-CitySense/internal/geo"
)

//go:embed prompts/analyze_v1.txt
var analyzePromptV1 string

const (
	emptyHistorySentence  = "No previous issues analyzed in this session."
	noLocationSentence    = "Location not provided."
	noDescriptionSentence = "No description provided."
	locationLinePrefix    = "Location coordinates: "
	historyEntrySeparator = "; "
)

// buildPromptText fills the fixed instruction template with the submission
// context.
func buildPromptText(description string, history []IssueAnalysis, location *geo.Location) string {
	locationLine := noLocationSentence
	if location != nil {
		locationLine = locationLinePrefix + location.String()
	}
	descriptionLine := description
	if strings.TrimSpace(descriptionLine) == "" {
		descriptionLine = noDescriptionSentence
	}

	replacer := strings.NewReplacer(
		"{{LOCATION}}", locationLine,
		"{{DESCRIPTION}}", descriptionLine,
		"{{HISTORY}}", historyContext(history),
	)
	return replacer.Replace(analyzePromptV1)
}

// historyContext renders the read-only history snapshot for the prompt, one
// line per prior result in original order.
func historyContext(history []IssueAnalysis) string {
	if len(history) == 0 {
		return emptyHistorySentence
	}
	entries := make([]string, 0, len(history))
	for i, h := range history {
		entries = append(entries, fmt.Sprintf("Issue %d: %s (Severity: %d/10)", i+1, h.IssueType, h.SeverityScore))
	}
	return strings.Join(entries, historyEntrySeparator)
}
