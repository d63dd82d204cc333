// Package display holds the pure presentation rules the browser uses to
// render an analysis: severity banding, category badge styling, and score
// bar sizing. These rules are derived from the numeric score and category
// string only; they are independent of the severity enum the model itself
// returns, and the two are displayed side by side without reconciliation.
package display

import "strings"

// Band is a severity band derived from the 1-10 score.
type Band struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// SeverityBand maps a score to its display band.
func SeverityBand(score int) Band {
	switch {
	case score >= 9:
		return Band{Label: "Critical", Color: "red"}
	case score >= 7:
		return Band{Label: "High", Color: "orange"}
	case score >= 4:
		return Band{Label: "Moderate", Color: "yellow"}
	default:
		return Band{Label: "Low", Color: "green"}
	}
}

// Badge is the styling treatment for a category badge.
type Badge struct {
	Style       string `json:"style"`
	WarningIcon bool   `json:"warningIcon"`
}

// categoryRule pairs keywords with a badge. Rules are checked in order and
// the first match wins, so a category matching several keyword groups gets
// the earliest style.
type categoryRule struct {
	keywords []string
	badge    Badge
}

var categoryRules = []categoryRule{
	{keywords: []string{"pothole"}, badge: Badge{Style: "orange"}},
	{keywords: []string{"garbage", "waste", "trash"}, badge: Badge{Style: "stone"}},
	{keywords: []string{"water", "drain", "flood", "leak"}, badge: Badge{Style: "blue"}},
	{keywords: []string{"signal", "light"}, badge: Badge{Style: "red"}},
	{keywords: []string{"infrastructure", "building", "road", "bridge", "damaged"}, badge: Badge{Style: "slate"}},
	{keywords: []string{"safe", "hazard", "danger", "accident", "security"}, badge: Badge{Style: "danger", WarningIcon: true}},
}

var defaultBadge = Badge{Style: "purple"}

// CategoryBadge classifies a free-form category string for styling using
// case-insensitive substring matching.
func CategoryBadge(category string) Badge {
	cat := strings.ToLower(category)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(cat, kw) {
				return rule.badge
			}
		}
	}
	return defaultBadge
}

// ScoreBarWidth returns the score bar width in percent. The 5% floor keeps
// zero and low scores visible; valid scores never exceed 100.
func ScoreBarWidth(score int) int {
	width := score * 10
	if width < 5 {
		return 5
	}
	return width
}
