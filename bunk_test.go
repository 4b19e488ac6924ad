package bunk

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"
)

var (
	allChecksums = []Checksum{
		ChecksumDisabled, ChecksumLength1, ChecksumLength2, ChecksumLength3, ChecksumLength4,
	}
	allWordLens = []uint8{0, 1, 2, 3, 10, 11}
)

func roundTrip(t *testing.T, data []byte, s Settings) {
	t.Helper()
	encoded := EncodeWithSettings(data, s)
	decoded, err := DecodeWithChecksum(encoded, s.Checksum)
	if err != nil {
		t.Fatalf("decoding %q (data %v, settings %+v) failed: %v", encoded, data, s, err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatalf("round trip mismatch for settings %+v: got %v, want %v (encoded %q)", s, decoded, data, encoded)
	}
}

func TestRoundTripStress(t *testing.T) {
	n := 40
	if testing.Short() {
		n = 4
	}
	rng := rand.New(rand.NewPCG(7502546294857623797, 1))
	sizes := []int{0, 1, 2, 3, 10, 16, 30, 31, 32, 64, 100, 250, 509, 510}
	for _, size := range sizes {
		for range n {
			data := make([]byte, size)
			for i := range data {
				data[i] = byte(rng.Uint32())
			}
			for _, c := range allChecksums {
				for _, wordLen := range allWordLens {
					for _, decorate := range []bool{false, true} {
						roundTrip(t, data, Settings{WordLen: wordLen, Checksum: c, Decorate: decorate})
					}
				}
			}
		}
	}
}

func TestRoundTripLowEntropy(t *testing.T) {
	for _, fill := range []byte{0x00, 0xFF, 0x55} {
		for _, size := range []int{1, 255, 256, 257, 600} {
			data := bytes.Repeat([]byte{fill}, size)
			for _, c := range allChecksums {
				roundTrip(t, data, Settings{WordLen: 3, Checksum: c})
				roundTrip(t, data, Settings{Checksum: c, Decorate: true})
			}
		}
	}
}

func TestRoundTripDefaults(t *testing.T) {
	for _, input := range []string{"", "aftersun", "it's such a beautiful day"} {
		decoded, err := Decode(Encode([]byte(input)))
		if err != nil {
			t.Fatalf("decoding %q failed: %v", input, err)
		}
		if string(decoded) != input {
			t.Fatalf("round trip of %q yields %q", input, decoded)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	done := make(chan error)
	for g := range 8 {
		go func() {
			data := bytes.Repeat([]byte{byte(g)}, 100+g)
			for range 50 {
				decoded, err := Decode(Encode(data))
				if err == nil && !bytes.Equal(decoded, data) {
					err = fmt.Errorf("goroutine %d: round trip mismatch", g)
				}
				if err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for range 8 {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunningCodeSelfInverse(t *testing.T) {
	for i := range 512 {
		for b := range 256 {
			if got := runningCode(runningCode(byte(b), i), i); got != byte(b) {
				t.Fatalf("runningCode is not self-inverse for b=%d, i=%d: got %d", b, i, got)
			}
		}
	}
	if runningCode(0x42, 3) != runningCode(0x42, 3+256) {
		t.Fatalf("runningCode should repeat every 256 indices")
	}
}

func TestEntropyTableIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range entropyTable {
		if seen[v] {
			t.Fatalf("value %#x occurs twice in entropy table", v)
		}
		seen[v] = true
	}
}

func TestChecksumFNV1a(t *testing.T) {
	c := newChecksum()
	if d := c.digest(); d != [4]byte{0xc5, 0x9d, 0x1c, 0x81} {
		t.Fatalf("empty hash must be the offset basis, is %x", d)
	}
	c.update('a')
	// FNV-1a 32 of "a" is 0xe40c292c
	if d := c.digest(); d != [4]byte{0x2c, 0x29, 0x0c, 0xe4} {
		t.Fatalf("hash of \"a\" mismatch: %x", d)
	}
	if s := c.seed(); s != 12 {
		t.Fatalf("expected 12 set bits in 0xe40c292c, got %d", s)
	}
}
