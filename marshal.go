package bytestr

import (
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (v View) MarshalText() ([]byte, error) {
	return append([]byte(nil), v.bytes()...), nil
}

// MarshalYAML implements yaml.Marshaler.
func (v View) MarshalYAML() (any, error) {
	return v.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (b *Buffer) MarshalText() ([]byte, error) {
	return append([]byte(nil), b.buf[:b.n]...), nil
}

// UnmarshalText replaces the contents with text.
func (b *Buffer) UnmarshalText(text []byte) error {
	if err := b.live("UnmarshalText"); err != nil {
		return err
	}
	b.n = 0
	b.push(text)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b *Buffer) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML replaces the contents with a YAML scalar.
func (b *Buffer) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return b.UnmarshalText(RefString(s).data)
}
