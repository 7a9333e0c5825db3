package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode validates r and returns its JSON form.
func Encode(r Record) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	blob, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	return blob, nil
}

// Decode parses and validates a blob produced by Encode. Unknown fields,
// trailing data and any structural problem yield ErrCorruptSnapshot.
func Decode(blob []byte) (Record, error) {
	var r Record
	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return Record{}, fmt.Errorf("Decode: %v: %w", err, ErrCorruptSnapshot)
	}
	if dec.More() {
		return Record{}, fmt.Errorf("Decode: trailing data: %w", ErrCorruptSnapshot)
	}
	if err := r.Validate(); err != nil {
		return Record{}, fmt.Errorf("Decode: %w", err)
	}

	return r, nil
}
