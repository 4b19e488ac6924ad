package bunk

// Encode encodes data using DefaultSettings.
func Encode(data []byte) string {
	return EncodeWithSettings(data, DefaultSettings())
}

// EncodeWithSettings encodes data using the given settings. Encoding cannot
// fail and is deterministic. The checksum setting used for decoding must
// match s.Checksum.
func EncodeWithSettings(data []byte, s Settings) string {
	checksumLen := s.Checksum.Len()
	st := sentence{
		buffer:   make([]byte, 0, 3*(len(data)+checksumLen)),
		maxWord:  s.maxWordLen(),
		decorate: s.Decorate,
	}
	hash := newChecksum()
	for i, b := range data {
		hash.update(b)
		st.push(runningCode(b, i), hash.seed())
	}
	digest := hash.digest()
	for _, b := range digest[:checksumLen] {
		// updated only to advance the decoration seed
		hash.update(b)
		st.push(b, hash.seed())
	}
	return string(st.finish())
}

// sentence encodes bytes as syllables one by one. It neither applies the
// running code nor computes the checksum.
type sentence struct {
	buffer   []byte // encoded ASCII text so far
	previous string // previous syllable in the current word, "" at word start
	wordLen  uint8  // syllables in the current word
	maxWord  uint8
	decorate bool
}

// Delimiters are chosen by the number of set bits of the hash (0..32).
const (
	periodAbove = 19 // seed > periodAbove: ". " and capitalize
	commaBelow  = 14 // seed < commaBelow: ", "
)

// push appends the syllable for b, preceded by a word break if the word is
// full or the boundary to the previous syllable would be ambiguous.
func (st *sentence) push(b byte, seed int) {
	syllable := syllableTable[b]
	wordBreak := st.wordLen >= st.maxWord ||
		(st.previous != "" && charFollows(syllable[0], st.previous))
	capitalize := false
	var delim string
	switch {
	case wordBreak && st.decorate && seed > periodAbove:
		capitalize, delim = true, ". "
	case wordBreak && st.decorate && seed < commaBelow:
		delim = ", "
	case wordBreak:
		delim = " "
	case st.decorate:
		capitalize = len(st.buffer) == 0
	}
	if delim != "" {
		st.wordLen = 0
		st.previous = ""
		st.buffer = append(st.buffer, delim...)
	}
	first := len(st.buffer)
	st.buffer = append(st.buffer, syllable...)
	if capitalize {
		st.buffer[first] -= 'a' - 'A'
	}
	st.previous = syllable
	st.wordLen++
}

// finish performs final decorations and returns the encoded text.
func (st *sentence) finish() []byte {
	if st.decorate && len(st.buffer) > 0 {
		st.buffer = append(st.buffer, '.')
	}
	return st.buffer
}
