package interpret

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/contextboard/internal/model"
)

// fencedJSONPattern matches a ```json fenced block
var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*\\n?(.*?)\\s*```")

// proseMarkers indicate the model wrote sentences instead of concepts
var proseMarkers = []string{". ", "! "}

// Reply is the only part of an external reply that is trusted
type Reply struct {
	Intent   string          `json:"intent"`
	Concepts []model.Concept `json:"concepts"`
}

// ParseReply extracts, parses and validates a raw model reply
func ParseReply(text string) (*Reply, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	if err := checkProse(raw); err != nil {
		return nil, err
	}

	return decodeReply(raw)
}

// checkProse rejects a reply whose serialized form reads like sentences.
// Every field counts, including ones decodeReply ignores.
func checkProse(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse reply: %w", err)
	}
	serialized, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("serialize reply: %w", err)
	}
	for _, marker := range proseMarkers {
		if bytes.Contains(serialized, []byte(marker)) {
			return fmt.Errorf("reply contains prose (%q)", marker)
		}
	}
	return nil
}

// extractJSON tries, in order, a fenced json block, the first balanced
// brace-delimited substring, and the whole reply. The first candidate that
// is valid JSON wins.
func extractJSON(text string) ([]byte, error) {
	var candidates []string
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, m[1])
	}
	if obj, ok := firstBalancedObject(text); ok {
		candidates = append(candidates, obj)
	}
	candidates = append(candidates, strings.TrimSpace(text))

	for _, c := range candidates {
		if json.Valid([]byte(c)) {
			return []byte(c), nil
		}
	}
	return nil, fmt.Errorf("no parseable JSON in reply")
}

// firstBalancedObject returns the first {...} span whose braces balance,
// ignoring braces inside JSON strings
func firstBalancedObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// decodeReply enforces the reply shape field by field so that a value of
// the wrong JSON kind is rejected rather than coerced
func decodeReply(raw []byte) (*Reply, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("reply is not an object: %w", err)
	}

	intentRaw, ok := fields["intent"]
	if !ok || !isJSONString(intentRaw) {
		return nil, fmt.Errorf("intent must be a string")
	}
	var intent string
	if err := json.Unmarshal(intentRaw, &intent); err != nil {
		return nil, fmt.Errorf("decode intent: %w", err)
	}

	conceptsRaw, ok := fields["concepts"]
	if !ok || !isJSONArray(conceptsRaw) {
		return nil, fmt.Errorf("concepts must be a list")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(conceptsRaw, &items); err != nil {
		return nil, fmt.Errorf("decode concepts: %w", err)
	}

	concepts := make([]model.Concept, 0, len(items))
	for i, item := range items {
		c, err := decodeConcept(item)
		if err != nil {
			return nil, fmt.Errorf("concept %d: %w", i, err)
		}
		concepts = append(concepts, c)
	}

	return &Reply{Intent: intent, Concepts: concepts}, nil
}

func decodeConcept(raw json.RawMessage) (model.Concept, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.Concept{}, fmt.Errorf("not an object: %w", err)
	}

	typeRaw, ok := fields["type"]
	if !ok || !isJSONString(typeRaw) {
		return model.Concept{}, fmt.Errorf("type must be a string")
	}
	var t string
	if err := json.Unmarshal(typeRaw, &t); err != nil {
		return model.Concept{}, err
	}
	ct := model.ConceptType(t)
	if !ct.IsValid() {
		return model.Concept{}, fmt.Errorf("type %q is not allowed", t)
	}

	valueRaw, ok := fields["value"]
	if !ok {
		return model.Concept{}, fmt.Errorf("value is required")
	}
	var v model.Value
	if err := json.Unmarshal(valueRaw, &v); err != nil {
		return model.Concept{}, err
	}
	if ct == model.ConceptQuantity && !v.IsNumeric() {
		return model.Concept{}, fmt.Errorf("quantity value %q is not numeric", v.String())
	}

	return model.Concept{Type: ct, Value: v}, nil
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
