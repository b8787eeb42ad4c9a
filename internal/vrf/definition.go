package vrf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/vrfctl/internal/restconf"
)

const (
	// DataModel is the IOS-XE native configuration model root.
	DataModel = "Cisco-IOS-XE-native:native"
	// DefinitionKey wraps a VRF definition in GET responses and PUT bodies.
	DefinitionKey = "Cisco-IOS-XE-native:definition"

	fieldName        = "name"
	fieldDescription = "description"
)

// ResourcePath returns the datastore path of the named VRF definition.
func ResourcePath(name string) string {
	return restconf.Path(DataModel, "vrf", restconf.ListEntry("definition", name))
}

// Definition is a VRF definition as configured on the device. Only the name and the
// description are interpreted; every other field is kept as raw JSON and written back
// untouched, since the write is a full replace.
//
// A Definition is never mutated after construction. A nil *Definition means the VRF
// does not exist.
type Definition struct {
	fields map[string]json.RawMessage
}

// NewDefinition returns a definition holding only a name.
func NewDefinition(name string) *Definition {
	return &Definition{fields: map[string]json.RawMessage{fieldName: encodeString(name)}}
}

// Description returns the description and whether one is configured.
func (d *Definition) Description() (string, bool) {
	return d.stringField(fieldDescription)
}

// WithDescription returns a copy of d with the description replaced.
func (d *Definition) WithDescription(description string) *Definition {
	out := d.clone()
	out.fields[fieldDescription] = encodeString(description)
	return out
}

// MarshalJSON encodes the definition as a JSON object.
func (d *Definition) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	fields := d.fields
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return json.Marshal(fields)
}

// UnmarshalJSON decodes a JSON object, keeping every field.
func (d *Definition) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("vrf definition must be a JSON object")
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return err
	}
	d.fields = fields
	return nil
}

func (d *Definition) clone() *Definition {
	if d == nil {
		return &Definition{fields: map[string]json.RawMessage{}}
	}
	out := &Definition{fields: make(map[string]json.RawMessage, len(d.fields)+1)}
	for k, v := range d.fields {
		out.fields[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

func (d *Definition) stringField(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	raw, ok := d.fields[key]
	if !ok {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

func encodeString(s string) json.RawMessage {
	raw, _ := json.Marshal(s)
	return raw
}

// Envelope is the wire shape shared by GET responses and PUT bodies.
type Envelope struct {
	Definition *Definition `json:"Cisco-IOS-XE-native:definition"`
}

// Wrap encodes d under DefinitionKey.
func Wrap(d *Definition) ([]byte, error) {
	return json.Marshal(Envelope{Definition: d})
}

// Unwrap decodes a GET response body. The definition may be an object or, as some
// RESTCONF servers render list instances, a single-element array.
func Unwrap(body []byte) (*Definition, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	raw, ok := top[DefinitionKey]
	if !ok {
		return nil, fmt.Errorf("decode response: missing %q", DefinitionKey)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("decode response: %q is empty", DefinitionKey)
	}
	if trimmed[0] == '[' {
		var list []*Definition
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if len(list) != 1 || list[0] == nil {
			return nil, fmt.Errorf("decode response: expected one %q entry, got %d", DefinitionKey, len(list))
		}
		return list[0], nil
	}

	def := &Definition{}
	if err := json.Unmarshal(trimmed, def); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return def, nil
}
