// Package parsing extracts JSON values embedded in free-form model output.
// The generative service gives no schema guarantee, so extraction is lenient
// and every failure surfaces as a recoverable ParseError.
package parsing

import (
	"encoding/json"
	"strings"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
)

// ExtractJSON locates a JSON value in raw model text and returns it decoded
// into out. The scan takes the substring between the first opening bracket
// and the last matching closing bracket. This is deliberately not a balanced
// scanner: with more than one JSON fragment in the text the substring spans
// them all and decoding fails, which routes the caller to its fallback.
func ExtractJSON(raw string, out any) error {
	text := llm.CleanJSONBlock(raw)

	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	start, closer := objStart, "}"
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start, closer = arrStart, "]"
	}
	if start < 0 {
		return &ParseError{Message: "no JSON value found in response"}
	}

	end := strings.LastIndex(text, closer)
	if end < start {
		return &ParseError{Message: "unterminated JSON value in response"}
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), out); err != nil {
		return &ParseError{Message: "failed to decode JSON response", Cause: err}
	}
	return nil
}

// ExtractRaw behaves like ExtractJSON but stops at the raw message, letting
// the caller validate the payload shape before decoding.
func ExtractRaw(raw string) (json.RawMessage, error) {
	var msg json.RawMessage
	if err := ExtractJSON(raw, &msg); err != nil {
		return nil, err
	}
	return msg, nil
}
