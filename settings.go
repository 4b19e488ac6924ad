package bunk

import (
	"fmt"
	"strings"
)

// Checksum specifies the number of checksum bytes appended when encoding.
// Its value is the number of bytes.
type Checksum uint8

const (
	ChecksumDisabled Checksum = iota // no checksum
	ChecksumLength1                  // 1 byte (default)
	ChecksumLength2                  // 2 bytes
	ChecksumLength3                  // 3 bytes
	ChecksumLength4                  // 4 bytes
)

// Len returns the number of checksum bytes. Values beyond ChecksumLength4
// are treated as ChecksumLength4.
func (c Checksum) Len() int {
	return int(min(c, ChecksumLength4))
}

func (c Checksum) String() string {
	if c == ChecksumDisabled {
		return "disabled"
	}
	return fmt.Sprintf("length%d", c.Len())
}

// MarshalText implements encoding.TextMarshaler.
func (c Checksum) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "disabled",
// "none", the digits 0 to 4 and "length1" to "length4".
func (c *Checksum) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	switch s {
	case "disabled", "none", "0":
		*c = ChecksumDisabled
		return nil
	}
	s = strings.TrimPrefix(s, "length")
	if len(s) == 1 && s[0] >= '1' && s[0] <= '4' {
		*c = Checksum(s[0] - '0')
		return nil
	}
	return fmt.Errorf("invalid checksum setting %q", string(text))
}

// Settings are used when encoding. Only Checksum has to match when decoding.
type Settings struct {
	// WordLen is the maximum number of syllables in a word; 0 means no limit.
	// Words may be shorter, as the encoder breaks words where a syllable
	// boundary would be ambiguous.
	WordLen uint8
	// Checksum is the number of checksum bytes appended.
	Checksum Checksum
	// Decorate enables commas, periods and sentence casing. Decorations are
	// ignored when decoding.
	Decorate bool
}

// DefaultSettings returns settings with words of at most 3 syllables, a
// 1-byte checksum and no decoration.
func DefaultSettings() Settings {
	return Settings{
		WordLen:  3,
		Checksum: ChecksumLength1,
	}
}

func (s Settings) maxWordLen() uint8 {
	if s.WordLen == 0 {
		return ^uint8(0)
	}
	return s.WordLen
}
