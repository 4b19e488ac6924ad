package dat

// DAT is a frozen double-array trie over short lowercase ASCII keys.
// - Nodes/states are indices into Base/Check. 0 is the root.
// - Transition: t := Base[s] ^ c; valid if Check[t]&Mask == s; next state is t.
// - c is a dense alphabet code in [1..26]. c==0 labels the end of a key.
//
// Flags:
//   - The most significant bit of Base[s] marks s as a leaf (no children).
//     The low 31 bits of a leaf's Base carry the key's value.
//   - The most significant bit of Check[s] marks a node that has children and
//     also terminates a key. Its value is stored in the leaf reached by the
//     end-of-key label, i.e. at Base[Base[s] ^ 0].
//   - Unused slots, and the root, carry Invalid in Check.
//
// Arrays are allocated in blocks of BlockSize slots and every base is chosen
// so that base ^ c stays inside the array for all codes of the alphabet.
type DAT struct {
	// Alphabet maps letters a..z to dense codes.
	Alphabet Alphabet

	// Base and Check are the classic double-array, MSB-flagged.
	Base  []uint32 // len == N
	Check []uint32 // len == N
}

const (
	// Flag is the bit carrying the leaf/value flag in Base/Check entries.
	Flag uint32 = 1 << 31
	// Mask selects the value bits of a Base/Check entry.
	Mask uint32 = Flag - 1
	// Invalid is the parent id of unused slots and of the root.
	Invalid uint32 = Mask
	// BlockSize is the allocation granularity of Base and Check.
	BlockSize = 32
)

// Node is a traversal state of the trie. It is a plain value; no other memory
// is needed to continue a walk.
type Node struct {
	ID       uint32 // index into Base/Check
	Base     uint32 // base of the transitions, or the value if Leaf
	Leaf     bool   // node has no transitions
	HasValue bool   // node terminates a key
}

func splitMSB(x uint32) (bool, uint32) {
	return x&Flag != 0, x & Mask
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Root returns the node wherefrom all lookups begin.
func (d *DAT) Root() Node {
	_, base := splitMSB(d.Base[0])
	return Node{ID: 0, Base: base}
}

// Transition performs the transition labeled code from node n.
// Returns (child, true) if the transition exists in the trie.
func (d *DAT) Transition(n Node, code uint32) (Node, bool) {
	if n.Leaf {
		return Node{}, false
	}
	id := n.Base ^ code
	if int(id) >= len(d.Base) || int(id) >= len(d.Check) {
		return Node{}, false
	}
	isLeaf, base := splitMSB(d.Base[id])
	hasValue, parent := splitMSB(d.Check[id])
	if parent != n.ID {
		return Node{}, false
	}
	return Node{
		ID:       id,
		Base:     base,
		Leaf:     isLeaf,
		HasValue: isLeaf || hasValue,
	}, true
}

// Child folds r to lowercase, translates it through the alphabet and performs
// the transition. Runes outside a..z (or A..Z) never transition.
func (d *DAT) Child(n Node, r rune) (Node, bool) {
	code, ok := d.Alphabet.Code(r)
	if !ok {
		return Node{}, false
	}
	return d.Transition(n, code)
}

// Value returns the value of the key terminating at node n, if any.
func (d *DAT) Value(n Node) (uint32, bool) {
	switch {
	case !n.HasValue:
		return 0, false
	case n.Leaf:
		return n.Base, true
	}
	if int(n.Base) >= len(d.Base) {
		return 0, false
	}
	_, v := splitMSB(d.Base[n.Base])
	return v, true
}

// Walk replays key from the root. It returns the node reached and false if
// some transition along the way does not exist.
func (d *DAT) Walk(key string) (Node, bool) {
	n := d.Root()
	for _, r := range key {
		child, ok := d.Child(n, r)
		if !ok {
			return Node{}, false
		}
		n = child
	}
	return n, true
}

// LongestPrefix walks text from the root rune by rune and stops at the first
// rune which does not transition (or at the end of text). It reports the value
// of the node it stopped at and the number of runes consumed. The walk does not
// backtrack: if the node reached carries no value, the result is (0, 0, false)
// even if a shorter prefix of text is a key.
func (d *DAT) LongestPrefix(text string) (value uint32, length int, ok bool) {
	n := d.Root()
	for _, r := range text {
		child, found := d.Child(n, r)
		if !found {
			break
		}
		n = child
		length++
	}
	if value, ok = d.Value(n); !ok {
		return 0, 0, false
	}
	return value, length, true
}

// Follows reports whether r is a valid continuation of key, i.e. whether the
// walk over key followed by r succeeds.
func (d *DAT) Follows(r rune, key string) bool {
	n, ok := d.Walk(key)
	if !ok {
		return false
	}
	_, ok = d.Child(n, r)
	return ok
}

// Stats reports slot usage of the trie arrays.
type Stats struct {
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is the share of used slots.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats returns density metrics for the trie arrays.
func (d *DAT) Stats() Stats {
	stats := Stats{TotalSlots: d.NStates()}
	for i, c := range d.Check {
		if i == 0 || c != Invalid {
			stats.UsedSlots++
			stats.MaxStateID = i
		}
	}
	return stats
}
