package config

import "encoding/json"

const redacted = "********"

// Secret is a string that never renders its value. Use Reveal to read it.
type Secret string

// Reveal returns the secret value.
func (s Secret) Reveal() string {
	return string(s)
}

// IsZero reports whether the secret is empty.
func (s Secret) IsZero() bool {
	return s == ""
}

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// GoString keeps %#v from printing the value.
func (s Secret) GoString() string {
	return s.String()
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s Secret) MarshalYAML() (any, error) {
	return s.String(), nil
}
