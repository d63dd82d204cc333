package display

import "testing"

func TestSeverityBandBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Low"},
		{1, "Low"},
		{3, "Low"},
		{4, "Moderate"},
		{6, "Moderate"},
		{7, "High"},
		{8, "High"},
		{9, "Critical"},
		{10, "Critical"},
	}

	for _, tt := range tests {
		if got := SeverityBand(tt.score); got.Label != tt.want {
			t.Fatalf("SeverityBand(%d) = %q, want %q", tt.score, got.Label, tt.want)
		}
	}
}

func TestSeverityBandColorsDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, score := range []int{1, 5, 8, 10} {
		band := SeverityBand(score)
		if prev, ok := seen[band.Color]; ok {
			t.Fatalf("bands %q and %q share color %q", prev, band.Label, band.Color)
		}
		seen[band.Color] = band.Label
	}
}

func TestCategoryBadgePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
		icon     bool
	}{
		{name: "pothole", category: "Pothole", want: "orange"},
		{name: "garbage", category: "garbage dump", want: "stone"},
		{name: "trash", category: "roadside TRASH", want: "stone"},
		{name: "waterlogging", category: "Waterlogging", want: "blue"},
		{name: "broken signal", category: "Broken Signal", want: "red"},
		{name: "street light", category: "street light outage", want: "red"},
		{name: "bridge", category: "Bridge Crack", want: "slate"},
		{name: "unsafe area", category: "Unsafe Area", want: "danger", icon: true},
		{name: "accident zone", category: "Accident Zone", want: "danger", icon: true},
		{name: "other", category: "overcrowding", want: "purple"},
		// Matches both the water group and the infrastructure group ("damaged");
		// the water rule is checked first and must win.
		{name: "damaged water pipe", category: "Damaged Water Pipe", want: "blue"},
		// Matches garbage ("waste") before water ("water").
		{name: "waste water", category: "waste water overflow", want: "stone"},
		// "road" (infrastructure) loses to "pothole".
		{name: "pothole on road", category: "pothole on main road", want: "orange"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := CategoryBadge(tt.category)
			if got.Style != tt.want {
				t.Fatalf("CategoryBadge(%q).Style = %q, want %q", tt.category, got.Style, tt.want)
			}
			if got.WarningIcon != tt.icon {
				t.Fatalf("CategoryBadge(%q).WarningIcon = %v, want %v", tt.category, got.WarningIcon, tt.icon)
			}
		})
	}
}

func TestScoreBarWidth(t *testing.T) {
	if got := ScoreBarWidth(0); got != 5 {
		t.Fatalf("ScoreBarWidth(0) = %d, want 5", got)
	}
	if got := ScoreBarWidth(1); got != 10 {
		t.Fatalf("ScoreBarWidth(1) = %d, want 10", got)
	}
	if got := ScoreBarWidth(10); got != 100 {
		t.Fatalf("ScoreBarWidth(10) = %d, want 100", got)
	}

	prev := 0
	for score := 0; score <= 10; score++ {
		width := ScoreBarWidth(score)
		if width < prev {
			t.Fatalf("width decreased at score %d: %d < %d", score, width, prev)
		}
		prev = width
	}
}
