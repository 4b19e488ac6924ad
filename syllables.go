package bunk

// Syllable returns the syllable encoding byte b (before the running code is
// applied, i.e. the raw table entry).
func Syllable(b byte) string {
	return syllableTable[b]
}

// longestPrefixOf greedily finds the longest syllable at the start of text.
// It returns the syllable's byte and its length in bytes. The lookup stops at
// the first rune which does not continue the walk through the trie and does
// not backtrack.
func longestPrefixOf(text string) (byte, int, bool) {
	value, length, ok := syllableTrie.LongestPrefix(text)
	if !ok {
		return 0, 0, false
	}
	// all transitions are ASCII letters, so runes consumed == bytes consumed
	return byte(value), length, true
}

// charFollows reports whether letter is a valid continuation of syllable,
// i.e. whether a greedy decoder would read past the end of syllable if letter
// came next.
func charFollows(letter byte, syllable string) bool {
	return syllableTrie.Follows(rune(letter), syllable)
}
