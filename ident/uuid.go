package ident

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// UUID is a 128-bit identifier used as a stable, collision-resistant key.
// It is an immutable value type: comparable with ==, usable directly as a
// map key, and copied freely. The zero value is Invalid.
type UUID uuid.UUID

// Invalid is the reserved all-zero identifier denoting "no identifier".
// It is never produced by any of the Generate* constructors.
var Invalid UUID

// FromString parses the canonical textual form
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, case-insensitive). It reports
// false for anything else: wrong length, misplaced hyphens or non-hex
// characters. Malformed input is an ordinary negative result, never an
// error.
func FromString(text string) (UUID, bool) {
	// uuid.Parse also accepts urn prefixes, braces and the 32-digit
	// compact form; only the 36-character hyphenated shape is canonical
	// here.
	if len(text) != 36 {
		return Invalid, false
	}
	id, err := uuid.Parse(text)
	if err != nil {
		return Invalid, false
	}
	return UUID(id), true
}

// MustParse parses a canonical identifier or panics. Intended for
// package-level constants.
func MustParse(text string) UUID {
	id, ok := FromString(text)
	if !ok {
		panic(fmt.Sprintf("ident: invalid identifier %q", text))
	}
	return id
}

// String returns the canonical lowercase hyphenated form. For every valid
// identifier u, FromString(u.String()) yields u back.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// IsValid reports whether u differs from the Invalid sentinel.
func (u UUID) IsValid() bool {
	return u != Invalid
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike FromString,
// malformed input is an error here because codecs have no comma-ok
// channel to report absence through.
func (u *UUID) UnmarshalText(data []byte) error {
	id, ok := FromString(string(data))
	if !ok {
		return fmt.Errorf("ident: invalid identifier %q", string(data))
	}
	*u = id
	return nil
}

// MarshalYAML encodes the identifier as a canonical scalar.
func (u UUID) MarshalYAML() (interface{}, error) {
	return u.String(), nil
}

// UnmarshalYAML decodes a canonical scalar.
func (u *UUID) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(text))
}
