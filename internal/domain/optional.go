package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FieldState is the disclosure state of an optional input value.
type FieldState uint8

const (
	Absent FieldState = iota
	Present
	Invalid
)

func (s FieldState) String() string {
	switch s {
	case Present:
		return "present"
	case Invalid:
		return "invalid"
	default:
		return "absent"
	}
}

// Opt holds a value that a company may or may not have disclosed. The zero
// value is Absent. A value that was supplied but could not be decoded is kept
// as Invalid together with the reason, so validation can report it instead of
// the decoder silently dropping it.
type Opt[T any] struct {
	val    T
	state  FieldState
	reason string
}

func Some[T any](v T) Opt[T] { return Opt[T]{val: v, state: Present} }

func None[T any]() Opt[T] { return Opt[T]{} }

func Malformed[T any](reason string) Opt[T] { return Opt[T]{state: Invalid, reason: reason} }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	if o.state != Present {
		var zero T
		return zero, false
	}
	return o.val, true
}

func (o Opt[T]) State() FieldState { return o.state }
func (o Opt[T]) IsPresent() bool   { return o.state == Present }
func (o Opt[T]) Reason() string    { return o.reason }

// IsZero reports absence; it lets encoders honour omitzero/omitempty.
func (o Opt[T]) IsZero() bool { return o.state == Absent }

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.state != Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.val)
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		*o = Malformed[T](fmt.Sprintf("cannot decode %s: %v", string(data), err))
		return nil
	}
	*o = Some(v)
	return nil
}

func (o Opt[T]) MarshalYAML() (any, error) {
	if o.state != Present {
		return nil, nil
	}
	return o.val, nil
}

func (o *Opt[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		*o = Malformed[T](fmt.Sprintf("cannot decode %q at line %d: %v", node.Value, node.Line, err))
		return nil
	}
	*o = Some(v)
	return nil
}
