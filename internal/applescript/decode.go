package applescript

import (
	"encoding/json"
	"strings"
)

// Record is one decoded wire record: a flat object whose leaves are
// strings, bools, or numbers.
type Record map[string]any

// Result is the decoder's dual-mode output. Structured reports whether the
// reply parsed as the wire format; otherwise Scalar carries the raw text
// unchanged. Decoding failure is not an error: some operations return a
// bare acknowledgment string that never parses as structured data, and the
// same decode path serves both kinds of call site.
type Result struct {
	Records    []Record
	Scalar     string
	Structured bool
}

// Decode parses the executor's output text. The wire format is a strict
// JSON subset produced by the script prelude's encode handlers: an array of
// flat objects with string/number/bool leaves. Anything else, including
// empty input, falls back to the scalar view.
func Decode(text string) Result {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") {
		return Result{Scalar: trimmed}
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var records []Record
	if err := dec.Decode(&records); err != nil {
		return Result{Scalar: trimmed}
	}
	for _, rec := range records {
		for _, v := range rec {
			switch v.(type) {
			case string, bool, json.Number, nil:
			default:
				// nested structure: not ours
				return Result{Scalar: trimmed}
			}
		}
	}
	return Result{Records: records, Structured: true}
}
