package model

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to a record which may or may not be expanded. An
// unresolved reference is encoded as its id, a resolved one as the record.
type Ref[T any] struct {
	ID    string
	Value *T
}

func RefID[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

func Resolved[T any](id string, value T) Ref[T] {
	return Ref[T]{ID: id, Value: &value}
}

func (r Ref[T]) IsResolved() bool {
	return r.Value != nil
}

func (r Ref[T]) IsZero() bool {
	return r.ID == "" && r.Value == nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Value != nil {
		return json.Marshal(r.Value)
	}

	if r.ID == "" {
		return []byte("null"), nil
	}

	return json.Marshal(r.ID)
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*r = Ref[T]{}
		return nil

	case len(b) > 0 && b[0] == '"':
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref[T]{ID: id}
		return nil
	}

	var key struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &key); err != nil {
		return err
	}

	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return err
	}

	*r = Ref[T]{ID: key.ID, Value: &value}
	return nil
}
