package tuid

import (
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the identifier as its canonical hyphenated string; the
// phantom parameters contribute nothing to the document.
func (i ID[T, S]) MarshalYAML() (interface{}, error) {
	return i.UUID.String(), nil
}

// UnmarshalYAML decodes a scalar uuid node. Like the text and binary codecs
// it trusts the declared scheme and does not re-check the version nibble.
func (i *ID[T, S]) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	u, err := uuid.Parse(text)
	if err != nil {
		return err
	}
	i.UUID = u
	return nil
}
