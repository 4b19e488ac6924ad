package dat

// Alphabet maps the letters a..z to dense alphabet codes (uint8).
// Code 0 means "not part of the alphabet"; valid codes start at 1 because 0
// labels the end of a key.
//
// Lookup is one bounds check and one array read. Upper case ASCII letters are
// folded to lower case first.
type Alphabet [26]uint8

// Code returns the dense code for r.
// Returns false if r is not a letter of the alphabet.
func (a *Alphabet) Code(r rune) (uint32, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return 0, false
	}
	code := a[r-'a']
	if code == 0 {
		return 0, false
	}
	return uint32(code), true
}

// Set sets mapping letter -> code (code may be 0 to clear).
func (a *Alphabet) Set(letter byte, code uint8) {
	if letter < 'a' || letter > 'z' {
		return
	}
	a[letter-'a'] = code
}

// Size returns the number of codes in use, including the end-of-key label.
func (a *Alphabet) Size() int {
	size := 0
	for _, code := range a {
		if int(code) > size {
			size = int(code)
		}
	}
	return size + 1
}
