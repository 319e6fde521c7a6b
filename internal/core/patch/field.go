// Package patch implements typed JSON Merge Patch (RFC 7396) documents.
//
// A patch document is decoded into a struct whose members are Field values.
// Each Field remembers whether its key was absent, explicitly null, or carried
// a value, which is all the information merge-patch semantics need:
//
//	absent -> keep the current value
//	null   -> clear the value
//	value  -> replace the value wholesale
//
// Keys without a matching member (including the identifier) are ignored.
// Keys match json tags exactly; "NAME" does not address "name".
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MediaType is the content type of a merge patch request body.
const MediaType = "application/merge-patch+json"

// ErrNotObject is returned when a document is valid JSON but not an object.
var ErrNotObject = errors.New("merge patch document must be a JSON object")

type state uint8

const (
	stateUnset state = iota
	stateNull
	stateValue
)

var nullLiteral = []byte("null")

// Field is one member of a merge patch document.
type Field[T any] struct {
	state state
	value T
}

// Set returns a Field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{state: stateValue, value: v}
}

// Null returns a Field that clears the target.
func Null[T any]() Field[T] {
	return Field[T]{state: stateNull}
}

// IsSet reports whether the key was present in the document (null included).
func (f Field[T]) IsSet() bool {
	return f.state != stateUnset
}

// IsNull reports whether the key was present with a JSON null.
func (f Field[T]) IsNull() bool {
	return f.state == stateNull
}

// Get returns the carried value; ok is false for absent and null keys.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == stateValue
}

// IsZero makes absent fields disappear under the omitzero tag option.
func (f Field[T]) IsZero() bool {
	return f.state == stateUnset
}

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		var zero T
		f.state, f.value = stateNull, zero
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.state, f.value = stateValue, v
	return nil
}

// MarshalJSON writes null for cleared fields and the value otherwise.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != stateValue {
		return nullLiteral, nil
	}
	return json.Marshal(f.value)
}

// Apply merges f into a nullable target and returns the new target.
// The current pointer is never written through.
func Apply[T any](f Field[T], current *T) *T {
	switch f.state {
	case stateNull:
		return nil
	case stateValue:
		v := f.value
		return &v
	default:
		return current
	}
}

// Decode parses a merge patch document into dst, a pointer to a struct of Fields.
func Decode(data []byte, dst any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("decode merge patch: %w", ErrNotObject)
	}
	if !json.Valid(trimmed) {
		return fmt.Errorf("decode merge patch: invalid JSON")
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("decode merge patch: %w", ErrNotObject)
	}
	if err := UnmarshalExact(trimmed, dst); err != nil {
		return fmt.Errorf("decode merge patch: %w", err)
	}
	return nil
}
