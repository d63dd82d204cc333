package issues

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParseResult decodes a model response into an IssueAnalysis, failing closed.
// The document must be a JSON object carrying every required field with the
// right JSON type; a missing key or type mismatch yields ErrParse and no
// partial result. Field content is deliberately not validated beyond shape.
func ParseResult(raw json.RawMessage) (IssueAnalysis, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return IssueAnalysis{}, fmt.Errorf("%w: not a JSON object: %v", ErrParse, err)
	}

	for _, name := range requiredFields {
		val, ok := fields[name]
		if !ok {
			return IssueAnalysis{}, fmt.Errorf("%w: missing field %q", ErrParse, name)
		}
		if err := checkFieldShape(name, val); err != nil {
			return IssueAnalysis{}, err
		}
	}

	var result IssueAnalysis
	if err := json.Unmarshal(raw, &result); err != nil {
		return IssueAnalysis{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return result, nil
}

func checkFieldShape(name string, val json.RawMessage) error {
	switch name {
	case "severityScore":
		var score float64
		if err := json.Unmarshal(val, &score); err != nil {
			return fmt.Errorf("%w: field %q is not a number", ErrParse, name)
		}
		if score != math.Trunc(score) {
			return fmt.Errorf("%w: field %q is not an integer", ErrParse, name)
		}
	case "severity":
		var label string
		if err := json.Unmarshal(val, &label); err != nil {
			return fmt.Errorf("%w: field %q is not a string", ErrParse, name)
		}
		if !validSeverity(label) {
			return fmt.Errorf("%w: field %q has value outside the enum", ErrParse, name)
		}
	default:
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return fmt.Errorf("%w: field %q is not a string", ErrParse, name)
		}
	}
	return nil
}

func validSeverity(label string) bool {
	for _, s := range Severities {
		if string(s) == label {
			return true
		}
	}
	return false
}
