/*
Package dat implements a frozen double-array trie (DAT) over short keys of
lowercase ASCII letters.

The trie is stored in two parallel integer arrays, Base and Check. Child
states are found by XOR-ing a parent's base with the dense code of a letter;
the Check array holds the parent id of every used slot and thus rejects
transitions which merely collide on the XOR. The most significant bit of both
arrays is used as a flag, which lets a leaf carry its value directly in Base.

A traversal state is a small value (Node). Walking a key needs no memory
besides the static arrays, so a frozen DAT may be shared freely between
goroutines.

Tries are created offline with a Builder and then embedded as Go source (see
cmd/bunkgen).

Further Reading

	https://linux.thai.net/~thep/datrie/datrie.html
	https://github.com/daac-tools/crawdad
*/
package dat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bunk.dat'
func tracer() tracing.Trace {
	return tracing.Select("bunk.dat")
}
