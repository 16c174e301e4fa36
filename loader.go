package statekit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// definitionDoc is the external document shape accepted by the loaders:
// a transitions mapping (null marks a terminal state) and a default_state
// naming one of its keys.
type definitionDoc struct {
	Transitions  Transitions `json:"transitions" yaml:"transitions"`
	DefaultState State       `json:"default_state" yaml:"default_state"`
}

// ParseJSON builds a Definition from a JSON document of the form
//
//	{"transitions": {"start": ["end"], "end": null}, "default_state": "start"}
//
// Decoding is strict: unknown top-level fields are rejected. A definition
// loaded this way behaves identically to one declared directly with
// NewDefinition.
func ParseJSON(data []byte) (*Definition, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc definitionDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDefinition, err)
	}
	return buildFromDoc(doc)
}

// ParseYAML builds a Definition from a YAML document with the same shape
// ParseJSON accepts. Decoding is strict: unknown fields are rejected.
func ParseYAML(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc definitionDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDefinition, err)
	}
	return buildFromDoc(doc)
}

func buildFromDoc(doc definitionDoc) (*Definition, error) {
	if doc.Transitions == nil {
		return nil, fmt.Errorf("%w: missing transitions", ErrMalformedDefinition)
	}
	if doc.DefaultState == "" {
		return nil, fmt.Errorf("%w: missing default_state", ErrMalformedDefinition)
	}

	def, err := NewDefinition(doc.Transitions, doc.DefaultState)
	if err != nil {
		// Semantic failures still match their own sentinel through the wrap.
		if errors.Is(err, ErrMalformedDefinition) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedDefinition, err)
	}
	return def, nil
}
