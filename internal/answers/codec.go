// Package answers encodes and decodes the stored answer record and loads
// answer files for non-interactive intake.
package answers

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformed marks a payload that is not a valid answer record.
var ErrMalformed = errors.New("malformed answer record")

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// Encode serialises rec using the camelCase field names of the stored slot.
func Encode(rec *domain.AnswerRecord) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("encoding answers: %w", errors.New("nil record"))
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}
	return data, nil
}

// Decode validates payload against the embedded schema and unmarshals it.
// Missing fields keep the defaults of a fresh record.
func Decode(payload []byte) (*domain.AnswerRecord, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformed, strings.Join(msgs, "; "))
	}

	rec := domain.NewAnswerRecord()
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	if rec.Interests == nil {
		rec.Interests = []string{}
	}
	return rec, nil
}

// LoadFile reads and decodes an answers file. Choice fields must hold one
// of their option values.
func LoadFile(path string) (*domain.AnswerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	rec, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if errs := ValidateRecord(rec); len(errs) > 0 {
		return nil, fmt.Errorf("parsing %s: %w: %w", path, ErrMalformed, errors.Join(errs...))
	}
	return rec, nil
}
