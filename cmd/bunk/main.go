// Command bunk encodes binary data as pronounceable text and back.
//
// Usage:
//
//	bunk encode [file]         encode file (or stdin)
//	bunk decode [text...]      decode text (or stdin)
//	bunk syllables             print the syllable table
//	bunk version
//
// Encoder settings are taken from --word-len, --checksum and --decorate, or
// from a YAML file given with --config:
//
//	word_len: 3
//	checksum: 2
//	decorate: true
package main

import (
	"fmt"
	"os"
)

// Version is the version of the bunk command.
var Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		tracer().Errorf("bunk: %v", err)
		fmt.Fprintln(os.Stderr, "bunk:", err)
		os.Exit(1)
	}
}
