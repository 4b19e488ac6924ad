package dat

import (
	"fmt"
	"sort"

	"github.com/derekparker/trie"
)

type buildNode struct {
	state    uint32
	value    uint32
	terminal bool
	children map[uint32]*buildNode
}

type buildEntry struct {
	key   string
	value uint32
}

// Builder collects keys and freezes them into a DAT.
//
// A Builder is used once: after Freeze it rejects further keys.
type Builder struct {
	frozen  bool
	entries []buildEntry
	keys    *trie.Trie // reference trie, for duplicate detection and verification
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		entries: make([]buildEntry, 0, 256),
		keys:    trie.New(),
	}
}

// Add registers key with value. Keys must consist of letters a..z only, and
// values must fit into 31 bits.
func (b *Builder) Add(key string, value uint32) error {
	if b.frozen {
		return fmt.Errorf("cannot add key %q: builder is frozen", key)
	}
	if key == "" {
		return fmt.Errorf("empty key")
	}
	for i := 0; i < len(key); i++ {
		if key[i] < 'a' || key[i] > 'z' {
			return fmt.Errorf("key %q: invalid letter %q at position %d", key, key[i], i)
		}
	}
	if value&Flag != 0 {
		return fmt.Errorf("key %q: value %#x out of range", key, value)
	}
	if node, found := b.keys.Find(key); found {
		return fmt.Errorf("duplicate key %q (values %v and %d)", key, node.Meta(), value)
	}
	b.keys.Add(key, value)
	b.entries = append(b.entries, buildEntry{key: key, value: value})
	return nil
}

// Len returns the number of keys added so far.
func (b *Builder) Len() int { return len(b.entries) }

// Freeze lays out all keys as a double-array trie and verifies the result
// against the reference trie.
//
// Letters are assigned codes by descending frequency (ties broken by letter),
// nodes are placed breadth-first, each at the smallest free XOR base.
func (b *Builder) Freeze() (*DAT, error) {
	if b.frozen {
		return nil, fmt.Errorf("builder already frozen")
	}
	b.frozen = true
	d := &DAT{Alphabet: frequencyAlphabet(b.entries)}
	root := &buildNode{children: make(map[uint32]*buildNode)}
	for _, e := range b.entries {
		n := root
		for i := 0; i < len(e.key); i++ {
			c, _ := d.Alphabet.Code(rune(e.key[i]))
			child := n.children[c]
			if child == nil {
				child = &buildNode{children: make(map[uint32]*buildNode)}
				n.children[c] = child
			}
			n = child
		}
		n.terminal, n.value = true, e.value
	}
	used := make([]bool, 0, BlockSize)
	used = ensureIndex(d, used, 0)
	used[0] = true
	d.Check[0] = Invalid
	queue := []*buildNode{root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			d.Base[n.state] = Flag | n.value
			continue
		}
		labels := sortedLabels(n)
		base := findBase(used, labels)
		used = ensureIndex(d, used, int(maxTarget(base, labels)))
		d.Base[n.state] = base
		for _, label := range labels {
			t := base ^ label
			used[t] = true
			d.Check[t] = n.state
			if label == 0 {
				d.Base[t] = Flag | n.value
				d.Check[n.state] |= Flag
				continue
			}
			child := n.children[label]
			child.state = t
			queue = append(queue, child)
		}
	}
	if err := b.verify(d); err != nil {
		return nil, err
	}
	stats := d.Stats()
	tracer().Infof("trie stats keys=%d sigma=%d used=%d total=%d fill=%.2f maxStateID=%d",
		len(b.entries), d.Alphabet.Size(), stats.UsedSlots, stats.TotalSlots,
		stats.FillRatio(), stats.MaxStateID)
	return d, nil
}

// verify checks every key and every one-letter extension of every key prefix
// against the reference trie.
func (b *Builder) verify(d *DAT) error {
	for _, e := range b.entries {
		n, ok := d.Walk(e.key)
		if !ok {
			return fmt.Errorf("key %q not reachable in frozen trie", e.key)
		}
		if v, ok := d.Value(n); !ok || v != e.value {
			return fmt.Errorf("key %q: frozen trie yields (%d, %v), want %d", e.key, v, ok, e.value)
		}
		for i := 0; i <= len(e.key); i++ {
			prefix := e.key[:i]
			for letter := 'a'; letter <= 'z'; letter++ {
				ext := prefix + string(letter)
				_, inDAT := d.Walk(ext)
				if inRef := b.keys.HasKeysWithPrefix(ext); inDAT != inRef {
					return fmt.Errorf("prefix %q: frozen trie says %v, reference says %v", ext, inDAT, inRef)
				}
			}
		}
	}
	return nil
}

// frequencyAlphabet assigns dense codes 1..n to the letters occurring in the
// keys, most frequent first.
func frequencyAlphabet(entries []buildEntry) Alphabet {
	var freq [26]int
	for _, e := range entries {
		for i := 0; i < len(e.key); i++ {
			freq[e.key[i]-'a']++
		}
	}
	letters := make([]byte, 0, 26)
	for i, f := range freq {
		if f > 0 {
			letters = append(letters, byte('a'+i))
		}
	}
	sort.SliceStable(letters, func(i, j int) bool {
		return freq[letters[i]-'a'] > freq[letters[j]-'a']
	})
	var a Alphabet
	for i, letter := range letters {
		a.Set(letter, uint8(i+1))
	}
	return a
}

// sortedLabels returns the transition labels of n in ascending order,
// including the end-of-key label 0 if n terminates a key.
func sortedLabels(n *buildNode) []uint32 {
	labels := make([]uint32, 0, len(n.children)+1)
	if n.terminal {
		labels = append(labels, 0)
	}
	for label := range n.children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func findBase(used []bool, labels []uint32) uint32 {
	for base := uint32(0); ; base++ {
		ok := true
		for _, label := range labels {
			t := int(base ^ label)
			if t < len(used) && used[t] {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func maxTarget(base uint32, labels []uint32) uint32 {
	m := uint32(0)
	for _, label := range labels {
		m = max(m, base^label)
	}
	return m
}

// ensureIndex grows the arrays block-wise until idx is a valid index.
func ensureIndex(d *DAT, used []bool, idx int) []bool {
	if idx < len(d.Base) {
		return used
	}
	grow := (idx/BlockSize+1)*BlockSize - len(d.Base)
	d.Base = append(d.Base, make([]uint32, grow)...)
	for range grow {
		d.Check = append(d.Check, Invalid)
	}
	return append(used, make([]bool, grow)...)
}
