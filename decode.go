package bunk

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrSyllable is returned for text containing no recognizable syllable
	// where one is expected. The concrete error is a *SyllableError.
	ErrSyllable = errors.New("bunk: unrecognized syllable")
	// ErrTooShort is returned if there are fewer syllables than checksum bytes.
	ErrTooShort = errors.New("bunk: encoded data too short")
	// ErrChecksum is returned if the checksum does not match the decoded data.
	ErrChecksum = errors.New("bunk: data integrity check failed")
)

// SyllableError reports the byte offset in the input at which no syllable
// could be recognized.
type SyllableError struct {
	Offset int
}

func (e *SyllableError) Error() string {
	return "bunk: unrecognized syllable at offset " + strconv.Itoa(e.Offset)
}

// Is makes errors.Is(err, ErrSyllable) hold for every SyllableError.
func (e *SyllableError) Is(target error) bool {
	return target == ErrSyllable
}

// Decode decodes text which was encoded with the default checksum setting.
// All other settings are irrelevant for decoding.
func Decode(text string) ([]byte, error) {
	return DecodeWithChecksum(text, DefaultSettings().Checksum)
}

// DecodeWithChecksum decodes text using the given checksum setting, which must
// match the one used for encoding.
//
// Characters other than letters are skipped between syllables. Decoding is
// greedy: at every position the longest syllable is taken. This is correct for
// every text produced by the encoder, which breaks words wherever a greedy
// decoder could read past a syllable boundary.
//
// Errors are ErrSyllable (as *SyllableError), ErrTooShort and ErrChecksum.
// No data is returned together with an error.
func DecodeWithChecksum(text string, c Checksum) ([]byte, error) {
	buffer := make([]byte, 0, len(text)/2)
	rest := text
	for rest != "" {
		b, length, ok := longestPrefixOf(rest)
		if !ok {
			return nil, &SyllableError{Offset: len(text) - len(rest)}
		}
		buffer = append(buffer, b)
		rest = rest[length:]
		next := strings.IndexFunc(rest, isAlphabetic)
		if next < 0 {
			break
		}
		rest = rest[next:]
	}
	payloadLen := len(buffer) - c.Len()
	if payloadLen < 0 {
		return nil, ErrTooShort
	}
	hash := newChecksum()
	for i := range buffer[:payloadLen] {
		buffer[i] = runningCode(buffer[i], i)
		hash.update(buffer[i])
	}
	digest := hash.digest()
	for i, b := range buffer[payloadLen:] {
		if b != digest[i] {
			return nil, ErrChecksum
		}
	}
	return buffer[:payloadLen], nil
}

// isAlphabetic reports whether r has the Unicode Alphabetic property.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}
