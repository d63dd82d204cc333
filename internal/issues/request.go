package issues

import (
	"github.com/bytebender77/AI-CitySense/internal/geo"
	"github.com/bytebender77/AI-CitySense/internal/llm"
	"github.com/bytebender77/AI-CitySense/internal/media"
)

// Submission is one user report: at most one payload per media slot, free
// text, and an optional location. Media values are browser data URIs or bare
// base64.
type Submission struct {
	Image       string
	Video       string
	Audio       string
	Description string
	Location    *geo.Location
}

// HasInput reports whether the submission carries anything to analyze.
func (s Submission) HasInput() bool {
	return s.Image != "" || s.Video != "" || s.Audio != "" || s.Description != ""
}

// BuildRequest assembles the inference request for a submission against a
// read-only history snapshot: the filled instruction template first, then one
// inline-data part per present media payload. History is never mutated here.
func BuildRequest(sub Submission, history []IssueAnalysis) llm.Request {
	parts := []llm.Part{llm.TextPart(buildPromptText(sub.Description, history, sub.Location))}

	if sub.Image != "" {
		parts = append(parts, llm.DataPart(media.DetectMIME(media.KindImage, sub.Image), media.Base64Body(sub.Image)))
	}
	if sub.Video != "" {
		parts = append(parts, llm.DataPart(media.DetectMIME(media.KindVideo, sub.Video), media.Base64Body(sub.Video)))
	}
	if sub.Audio != "" {
		parts = append(parts, llm.DataPart(media.DetectMIME(media.KindAudio, sub.Audio), media.Base64Body(sub.Audio)))
	}

	return llm.Request{
		Parts:  parts,
		Schema: ResponseSchema(),
	}
}
