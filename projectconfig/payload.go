package projectconfig

import (
	"bytes"
	"encoding/json"
	"strings"
)

// payloadField is one top-level entry of a partial-update body.
type payloadField struct {
	key   string
	value any
}

// updatePayload is an ordered partial-update body. Field order is the
// insertion order, which keeps the serialized body and the derived update
// mask deterministic. The backend treats the mask as a set, but a stable
// ordering makes requests reproducible and testable.
type updatePayload []payloadField

// MarshalJSON serializes the payload as a JSON object preserving field
// order, unlike a map whose keys Go would sort.
func (p updatePayload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UpdateMask returns the comma-joined top-level keys of the payload, in
// insertion order, ready to be sent as the updateMask query parameter.
func (p updatePayload) UpdateMask() string {
	keys := make([]string, 0, len(p))
	for _, f := range p {
		keys = append(keys, f.key)
	}
	return strings.Join(keys, ",")
}
