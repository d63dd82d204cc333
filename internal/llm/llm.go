package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts multimodal inference providers.
type Client interface {
	// Analyze sends the request and returns the raw JSON text produced by the
	// model. Callers own schema validation of the returned document.
	Analyze(ctx context.Context, req Request) (json.RawMessage, error)
}

// Request is a single inference call: ordered prompt parts plus the declared
// response schema.
type Request struct {
	Parts  []Part
	Schema *Schema
}

// Part is one prompt part, either text or inline binary data. Exactly one of
// Text and Data is set.
type Part struct {
	Text     string
	MIMEType string
	Data     string // base64, no data-URI prefix
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// DataPart builds an inline-data part.
func DataPart(mimeType, data string) Part {
	return Part{MIMEType: mimeType, Data: data}
}

// Schema declares the structured-output shape a provider must return. It
// mirrors the subset of the Gemini response schema the service uses.
type Schema struct {
	Type             string             `json:"type"`
	Description      string             `json:"description,omitempty"`
	Enum             []string           `json:"enum,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Required         []string           `json:"required,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}

// Schema type names understood by the inference backend.
const (
	TypeObject  = "OBJECT"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
)

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Analyze returns ErrNotConfigured.
func (PlaceholderClient) Analyze(ctx context.Context, req Request) (json.RawMessage, error) {
	_ = ctx
	_ = req
	return nil, ErrNotConfigured
}
