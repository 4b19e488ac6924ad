/*
Package bunk encodes binary data as pronounceable gibberish, and back.

Bunk is meant for binary values, such as encryption keys or tokens, which a
human has to read aloud or type. Using the default settings, the 32 bytes
0, 1, ..., 31 are encoded as

	glasonorn zopaxence bussteko phopregu pyaesa fekaiious jarumpla vocreism fuquiga prospaas anthdusdo

and, with decorations enabled, as

	Glasonorn zopaxence, bussteko, phopregu pyaesa fekaiious, jarumpla vocreism fuquiga prospaas, anthdusdo.

Every byte is encoded as one of 256 syllables of 1 to 4 letters (2.48 on
average). A decoder finds the longest syllable at the start of the remaining
text with a static double-array trie and continues greedily. For this to be
unambiguous the encoder inserts a word break whenever the first letter of a
syllable would continue the previous one in the trie. This rule is stricter
than necessary, but it allows the decoder to work without backtracking.

Before a byte is looked up it is XOR-ed with an index dependent value from a
fixed table. This keeps inputs like []byte{0, 0, 0, 0} from producing visibly
repeated syllables. The transform is its own inverse and adds no security.

A checksum of 0 to 4 bytes (FNV-1a, not cryptographic) may be appended to the
payload. The same hash seeds the optional decoration with commas, periods and
sentence casing. Decoding ignores decorations and anything else which is not a
letter between syllables; it needs to know only the checksum length used for
encoding.

Basic usage:

	text := bunk.Encode([]byte("aftersun"))
	data, err := bunk.Decode(text)

The static tables in tables_gen.go are created by cmd/bunkgen from the master
list static/syllables.txt.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package bunk

//go:generate go run ./cmd/bunkgen --in static/syllables.txt --out tables_gen.go
