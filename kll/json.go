package kll

import (
	"encoding/base64"
	"encoding/json"

	"github.com/homeffjy/kll-go/internal/bindings"
)

// Sketches serialize to JSON as a base64 string of their opaque byte form.
// No other textual representation is defined.

// MarshalJSON implements json.Marshaler.
func (s *DoubleSketch) MarshalJSON() ([]byte, error) {
	data, err := s.Serialize()
	if err != nil {
		return nil, err
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(data))
}

// UnmarshalJSON implements json.Unmarshaler. On success the sketch's previous
// handle, if any, is released and replaced by the reconstructed one.
func (s *DoubleSketch) UnmarshalJSON(data []byte) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return errorf("UnmarshalJSON", "%w: %v", ErrDeserialization, err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return errorf("UnmarshalJSON", "%w: invalid base64: %v", ErrDeserialization, err)
	}
	h, err := bindings.DoubleDeserialize(raw)
	if err != nil {
		return wrapNative("UnmarshalJSON", ErrDeserialization, err)
	}
	if s.h != nil {
		bindings.DoubleFree(s.h)
	}
	s.h = h
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *FloatSketch) MarshalJSON() ([]byte, error) {
	data, err := s.Serialize()
	if err != nil {
		return nil, err
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(data))
}

// UnmarshalJSON implements json.Unmarshaler. On success the sketch's previous
// handle, if any, is released and replaced by the reconstructed one.
func (s *FloatSketch) UnmarshalJSON(data []byte) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return errorf("UnmarshalJSON", "%w: %v", ErrDeserialization, err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return errorf("UnmarshalJSON", "%w: invalid base64: %v", ErrDeserialization, err)
	}
	h, err := bindings.FloatDeserialize(raw)
	if err != nil {
		return wrapNative("UnmarshalJSON", ErrDeserialization, err)
	}
	if s.h != nil {
		bindings.FloatFree(s.h)
	}
	s.h = h
	return nil
}

var (
	_ json.Marshaler   = (*DoubleSketch)(nil)
	_ json.Unmarshaler = (*DoubleSketch)(nil)
	_ json.Marshaler   = (*FloatSketch)(nil)
	_ json.Unmarshaler = (*FloatSketch)(nil)
)
