/*
Package syllist reads master syllable lists.

A syllable list is a plain text file with one syllable per line. Line n
(counting syllable lines only, from 0) holds the syllable for byte value n.
Lines starting with '%' are comments, blank lines are skipped, and an optional
line

	\message{identifier}

names the list. Syllables consist of 1 to 4 lowercase ASCII letters.
*/
package syllist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bunk.syllist'
func tracer() tracing.Trace {
	return tracing.Select("bunk.syllist")
}

// MaxLen is the maximum number of letters in a syllable.
const MaxLen = 4

// Size is the number of syllables in a complete list.
const Size = 256

// Reader streams syllables from a syllable list.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next syllable.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "\\message{") && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
			tracer().Debugf("reading syllable list %q", r.identifier)
			continue
		}
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if err := validate(line); err != nil {
			return "", fmt.Errorf("line %d: %w", r.line, err)
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func validate(syllable string) error {
	if len(syllable) > MaxLen {
		return fmt.Errorf("syllable %q longer than %d letters", syllable, MaxLen)
	}
	for _, ch := range syllable {
		if ch < 'a' || ch > 'z' {
			return fmt.Errorf("syllable %q: invalid letter %q", syllable, ch)
		}
	}
	return nil
}

// Load reads a complete syllable list. The list must hold exactly Size
// distinct syllables.
func Load(reader io.Reader) ([]string, error) {
	r := NewReader(reader)
	syllables := make([]string, 0, Size)
	seen := make(map[string]int, Size)
	for {
		syllable, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[syllable]; dup {
			return nil, fmt.Errorf("syllable %q used for bytes %d and %d", syllable, prev, len(syllables))
		}
		seen[syllable] = len(syllables)
		syllables = append(syllables, syllable)
	}
	if len(syllables) != Size {
		return nil, fmt.Errorf("syllable list %q has %d entries, need %d", r.Identifier(), len(syllables), Size)
	}
	return syllables, nil
}
