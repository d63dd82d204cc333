package issues

import (
	"strings"
	"testing"

	"github.com/bytebender77/AI-CitySense/internal/geo"
)

func TestHistoryContext(t *testing.T) {
	if got := historyContext(nil); got != "No previous issues analyzed in this session." {
		t.Fatalf("empty history context = %q", got)
	}

	history := []IssueAnalysis{
		{IssueType: "pothole", SeverityScore: 6},
		{IssueType: "garbage", SeverityScore: 3},
	}
	want := "Issue 1: pothole (Severity: 6/10); Issue 2: garbage (Severity: 3/10)"
	if got := historyContext(history); got != want {
		t.Fatalf("history context = %q, want %q", got, want)
	}
}

func TestBuildPromptText(t *testing.T) {
	loc := &geo.Location{Latitude: 12.9716, Longitude: 77.5946}
	prompt := buildPromptText("large pothole near bus stop", nil, loc)

	for _, want := range []string{
		"Location coordinates: 12.9716, 77.5946",
		"User Description: large pothole near bus stop",
		"Session History: No previous issues analyzed in this session.",
		"Issue Category (pothole, garbage, waterlogging, broken signal",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}

	prompt = buildPromptText("  ", nil, nil)
	if !strings.Contains(prompt, "Location not provided.") {
		t.Fatalf("prompt missing location fallback")
	}
	if !strings.Contains(prompt, "User Description: No description provided.") {
		t.Fatalf("prompt missing description fallback")
	}
}

func TestBuildRequestParts(t *testing.T) {
	sub := Submission{
		Image:       "data:image/png;base64,SU1H",
		Video:       "data:video/webm;base64,VklE",
		Audio:       "QVVE",
		Description: "broken footpath",
	}

	req := BuildRequest(sub, nil)

	if req.Schema == nil {
		t.Fatalf("expected declared response schema")
	}
	if len(req.Parts) != 4 {
		t.Fatalf("expected 4 parts, got %d", len(req.Parts))
	}
	if req.Parts[0].Text == "" {
		t.Fatalf("expected prompt text first")
	}

	image := req.Parts[1]
	if image.MIMEType != "image/jpeg" || image.Data != "SU1H" {
		t.Fatalf("image part = %+v", image)
	}
	video := req.Parts[2]
	if video.MIMEType != "video/webm" || video.Data != "VklE" {
		t.Fatalf("video part = %+v", video)
	}
	audio := req.Parts[3]
	if audio.MIMEType != "audio/mp3" || audio.Data != "QVVE" {
		t.Fatalf("audio part = %+v", audio)
	}
}

func TestBuildRequestTextOnly(t *testing.T) {
	req := BuildRequest(Submission{Description: "flooded underpass"}, nil)
	if len(req.Parts) != 1 {
		t.Fatalf("expected only the text part, got %d parts", len(req.Parts))
	}
}

func TestResponseSchemaFields(t *testing.T) {
	schema := ResponseSchema()
	if schema.Type != "OBJECT" {
		t.Fatalf("schema type = %q", schema.Type)
	}
	if len(schema.Required) != 13 {
		t.Fatalf("expected 13 required fields, got %d", len(schema.Required))
	}
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; !ok {
			t.Fatalf("required field %q has no property declaration", name)
		}
	}
	severity := schema.Properties["severity"]
	if len(severity.Enum) != 4 {
		t.Fatalf("severity enum = %v", severity.Enum)
	}
	if schema.Properties["severityScore"].Type != "INTEGER" {
		t.Fatalf("severityScore must be INTEGER")
	}
}
