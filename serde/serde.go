/*
Package serde plugs bunk into serialization frameworks.

Fields of type Bytes are written as bunk-encoded strings by encoding/json
(and everything else honoring encoding.TextMarshaler), gopkg.in/yaml.v3 and
github.com/fxamacker/cbor/v2:

	type Vault struct {
	    Key  serde.Bytes `json:"key" yaml:"key" cbor:"key"`
	    Name string      `json:"name" yaml:"name" cbor:"name"`
	}

Serialization cannot carry encoder settings, so they are hard-coded (see
Settings). In particular, no checksum is used.
*/
package serde

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/npillmayer/bunk"
	"gopkg.in/yaml.v3"
)

// Settings returns the settings used for all serialization.
func Settings() bunk.Settings {
	return bunk.Settings{
		WordLen:  3,
		Checksum: bunk.ChecksumDisabled,
		Decorate: false,
	}
}

// Marshal encodes data with the serialization settings.
func Marshal(data []byte) string {
	return bunk.EncodeWithSettings(data, Settings())
}

// Unmarshal decodes text encoded with the serialization settings.
func Unmarshal(text string) ([]byte, error) {
	data, err := bunk.DecodeWithChecksum(text, Settings().Checksum)
	if err != nil {
		return nil, fmt.Errorf("serde: %w", err)
	}
	return data, nil
}

// Bytes is a byte slice serialized as bunk text.
type Bytes []byte

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(Marshal(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(text []byte) error {
	data, err := Unmarshal(string(text))
	if err != nil {
		return err
	}
	*b = data
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Bytes) MarshalYAML() (any, error) {
	return Marshal(b), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bytes) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(text))
}

// MarshalCBOR implements cbor.Marshaler. Bytes are written as a CBOR text
// string, not as a byte string.
func (b Bytes) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(Marshal(b))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (b *Bytes) UnmarshalCBOR(data []byte) error {
	var text string
	if err := cbor.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("serde: %w", err)
	}
	return b.UnmarshalText([]byte(text))
}
