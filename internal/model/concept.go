package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConceptType is one of the fixed concept categories the pipeline can express
type ConceptType string

const (
	ConceptAction   ConceptType = "action"
	ConceptQuantity ConceptType = "quantity"
	ConceptPayment  ConceptType = "payment"
	ConceptBenefit  ConceptType = "benefit"
	ConceptItem     ConceptType = "item"
	ConceptModifier ConceptType = "modifier"
)

// ConceptTypes lists every allowed concept type in display order
var ConceptTypes = []ConceptType{
	ConceptAction,
	ConceptQuantity,
	ConceptPayment,
	ConceptBenefit,
	ConceptItem,
	ConceptModifier,
}

// IsValid reports whether t is one of the allowed concept types
func (t ConceptType) IsValid() bool {
	for _, allowed := range ConceptTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// Value holds a concept value, which is either a string or a number
type Value struct {
	str     string
	num     float64
	numeric bool
}

// StringValue creates a string value
func StringValue(s string) Value {
	return Value{str: s}
}

// NumberValue creates a numeric value
func NumberValue(n float64) Value {
	return Value{num: n, numeric: true}
}

// IsNumeric reports whether the value is a number
func (v Value) IsNumeric() bool {
	return v.numeric
}

// Number returns the numeric value (0 for string values)
func (v Value) Number() float64 {
	return v.num
}

// IsEmpty reports whether a string value is blank. Numbers are never empty.
func (v Value) IsEmpty() bool {
	return !v.numeric && strings.TrimSpace(v.str) == ""
}

// String renders the value; integral numbers render without a decimal point
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// MarshalJSON encodes the value as a JSON string or number
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return []byte(v.String()), nil
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON accepts a JSON string or number only
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty concept value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid numeric concept value %s: %w", data, err)
		}
		*v = NumberValue(n)
		return nil
	default:
		return fmt.Errorf("concept value must be a string or number, got %s", data)
	}
}

// MarshalYAML encodes the value as a YAML scalar
func (v Value) MarshalYAML() (interface{}, error) {
	if v.numeric {
		return v.num, nil
	}
	return v.str, nil
}

// UnmarshalYAML accepts integer, float and string scalars
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: concept value must be a scalar", node.Line)
	}

	switch node.ShortTag() {
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*v = NumberValue(n)
	case "!!str":
		*v = StringValue(node.Value)
	default:
		return fmt.Errorf("line %d: concept value must be a string or number, got %s", node.Line, node.ShortTag())
	}
	return nil
}

// Concept is the smallest unit of meaning: a type plus a value
type Concept struct {
	Type  ConceptType `json:"type" yaml:"type" validate:"required,concept_type"`
	Value Value       `json:"value" yaml:"value"`
}

// NewConcept creates a concept with a string value
func NewConcept(t ConceptType, value string) Concept {
	return Concept{Type: t, Value: StringValue(value)}
}

// NewQuantity creates a quantity concept
func NewQuantity(n float64) Concept {
	return Concept{Type: ConceptQuantity, Value: NumberValue(n)}
}

// Validate applies the shared concept safety rules:
// whitelisted type, non-empty value, numeric quantity.
func (c Concept) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if c.Value.IsEmpty() {
		return fmt.Errorf("concept %s has an empty value", c.Type)
	}
	if c.Type == ConceptQuantity && !c.Value.IsNumeric() {
		return fmt.Errorf("quantity concept value %q is not numeric", c.Value.String())
	}
	return nil
}

// ValidateConcepts validates every concept and reports the first failure
func ValidateConcepts(concepts []Concept) error {
	for i, c := range concepts {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("concept %d: %w", i, err)
		}
	}
	return nil
}

func (c Concept) String() string {
	return fmt.Sprintf("%s=%s", c.Type, c.Value.String())
}
