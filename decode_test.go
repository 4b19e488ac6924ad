package bunk

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodeOutliers(t *testing.T) {
	for _, input := range []string{
		"uuuuuuuuuuu",
		"u  u  u  u  u  u  u  u  u  u  u  ",
		"sive123sive@tive  😀😀😀😀 son👀",
		"SIVE Sive sIvE",
	} {
		if _, err := DecodeWithChecksum(input, ChecksumDisabled); err != nil {
			t.Fatalf("decoding %q failed: %v", input, err)
		}
	}
}

func TestDecodeSkipsNonLetters(t *testing.T) {
	tests := []struct {
		noisy string
		clean string
	}{
		{noisy: "sive123sive@tive  😀😀😀😀 son👀", clean: "sive sive tive son"},
		{noisy: "u,u.u!u?u", clean: "uuuuu"},
		{noisy: "glapaxi\t\nze 42", clean: "glapaxi ze"},
		{noisy: "Glasonorn zopaxence, bussteko. ", clean: "glasonorn zopaxence bussteko"},
	}
	for _, tt := range tests {
		noisy, err := DecodeWithChecksum(tt.noisy, ChecksumDisabled)
		if err != nil {
			t.Fatalf("decoding %q failed: %v", tt.noisy, err)
		}
		clean, err := DecodeWithChecksum(tt.clean, ChecksumDisabled)
		if err != nil {
			t.Fatalf("decoding %q failed: %v", tt.clean, err)
		}
		if !bytes.Equal(noisy, clean) {
			t.Fatalf("%q decodes to %v, %q to %v", tt.noisy, noisy, tt.clean, clean)
		}
	}
	zeros, _ := DecodeWithChecksum("glapaxi ze", ChecksumDisabled)
	if !bytes.Equal(zeros, []byte{0, 0, 0, 0}) {
		t.Fatalf("glapaxi ze should decode to four zero bytes, got %v", zeros)
	}
}

func TestDecodeSyllableError(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{input: "😀", offset: 0},
		{input: "b", offset: 0},
		{input: "siv", offset: 0},
		{input: "faevlesa", offset: 3},
		{input: "sive sive x", offset: 10},
		{input: "u, u. w", offset: 6},
		{input: " u", offset: 0},
		{input: "uu2b", offset: 3},
	}
	for _, tt := range tests {
		data, err := DecodeWithChecksum(tt.input, ChecksumDisabled)
		if !errors.Is(err, ErrSyllable) {
			t.Fatalf("decoding %q: expected ErrSyllable, got %v", tt.input, err)
		}
		if data != nil {
			t.Fatalf("decoding %q: no data expected on error, got %v", tt.input, data)
		}
		var serr *SyllableError
		if !errors.As(err, &serr) || serr.Offset != tt.offset {
			t.Fatalf("decoding %q: expected offset %d, got %v", tt.input, tt.offset, err)
		}
		if !strings.Contains(err.Error(), "offset") {
			t.Fatalf("error message should mention the offset: %v", err)
		}
	}
}

func TestDecodeTooShort(t *testing.T) {
	tests := []struct {
		input    string
		checksum Checksum
	}{
		{input: "", checksum: ChecksumLength1},
		{input: "", checksum: ChecksumLength4},
		{input: "sive", checksum: ChecksumLength2},
		{input: "uu", checksum: ChecksumLength3},
		{input: "u", checksum: ChecksumLength2},
	}
	for _, tt := range tests {
		if _, err := DecodeWithChecksum(tt.input, tt.checksum); !errors.Is(err, ErrTooShort) {
			t.Fatalf("decoding %q with %v: expected ErrTooShort, got %v", tt.input, tt.checksum, err)
		}
	}
	data, err := DecodeWithChecksum("", ChecksumDisabled)
	if err != nil || len(data) != 0 {
		t.Fatalf("empty text without checksum should decode to no bytes, got (%v, %v)", data, err)
	}
}

func TestDecodeChecksumError(t *testing.T) {
	for _, input := range []string{"uu", "uuu", "u u u", "u"} {
		if _, err := DecodeWithChecksum(input, ChecksumLength1); !errors.Is(err, ErrChecksum) {
			t.Fatalf("decoding %q: expected ErrChecksum, got %v", input, err)
		}
	}
	// mismatching settings never crash
	encoded := EncodeWithSettings([]byte("settings"), Settings{WordLen: 3, Checksum: ChecksumLength2})
	for _, c := range []Checksum{ChecksumLength1, ChecksumLength3, ChecksumLength4} {
		if _, err := DecodeWithChecksum(encoded, c); err == nil {
			t.Fatalf("decoding with %v instead of %v should fail", c, ChecksumLength2)
		}
	}
}

// checksumCorpus is a fixed set of payloads for checksum sensitivity tests.
func checksumCorpus() [][]byte {
	corpus := make([][]byte, 0, 20)
	for k := range 20 {
		data := make([]byte, 1+3*k)
		for i := range data {
			data[i] = byte(i*k*13 + k + i)
		}
		corpus = append(corpus, data)
	}
	return corpus
}

// spaced renders payload and checksum bytes as space separated syllables,
// which is always unambiguous.
func spaced(payload []byte, checksum []byte) string {
	words := make([]string, 0, len(payload)+len(checksum))
	for i, b := range payload {
		words = append(words, Syllable(runningCode(b, i)))
	}
	for _, b := range checksum {
		words = append(words, Syllable(b))
	}
	return strings.Join(words, " ")
}

func TestDecodeChecksumSensitivity(t *testing.T) {
	for _, c := range []Checksum{ChecksumLength2, ChecksumLength3, ChecksumLength4} {
		for _, data := range checksumCorpus() {
			hash := newChecksum()
			for _, b := range data {
				hash.update(b)
			}
			digest := hash.digest()
			sum := digest[:c.Len()]
			decoded, err := DecodeWithChecksum(spaced(data, sum), c)
			if err != nil || !bytes.Equal(decoded, data) {
				t.Fatalf("untampered %v with %v: got (%v, %v)", data, c, decoded, err)
			}
			for pos := range data {
				for bit := range 8 {
					tampered := bytes.Clone(data)
					tampered[pos] ^= 1 << bit
					_, err := DecodeWithChecksum(spaced(tampered, sum), c)
					if !errors.Is(err, ErrChecksum) {
						t.Fatalf("flipping bit %d of byte %d in %v with %v: expected ErrChecksum, got %v",
							bit, pos, data, c, err)
					}
				}
			}
		}
	}
}

func TestDecodeIgnoresEncodeOnlySettings(t *testing.T) {
	data := []byte{231, 6, 39, 34}
	for _, wordLen := range allWordLens {
		for _, decorate := range []bool{false, true} {
			encoded := EncodeWithSettings(data, Settings{WordLen: wordLen, Checksum: ChecksumLength1, Decorate: decorate})
			decoded, err := Decode(encoded)
			if err != nil || !bytes.Equal(decoded, data) {
				t.Fatalf("decoding %q: got (%v, %v)", encoded, decoded, err)
			}
		}
	}
}
