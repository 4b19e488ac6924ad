// Command bunkgen compiles the master syllable list into the static tables
// of package bunk.
//
//	go run ./cmd/bunkgen --in static/syllables.txt --out tables_gen.go
//
// The syllable of byte n is the n-th syllable of the list. The generated file
// holds the syllable table and the frozen double-array trie used for decoding.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/npillmayer/bunk/dat"
	"github.com/npillmayer/bunk/syllist"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
)

// tracer writes to trace with key 'bunk.gen'
func tracer() tracing.Trace {
	return tracing.Select("bunk.gen")
}

func main() {
	in := pflag.String("in", "static/syllables.txt", "master syllable list")
	out := pflag.String("out", "tables_gen.go", "generated Go file")
	pflag.Parse()
	if err := run(*in, *out); err != nil {
		tracer().Errorf("bunkgen: %v", err)
		fmt.Fprintln(os.Stderr, "bunkgen:", err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	syllables, err := syllist.Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	src, err := generate(in, syllables)
	if err != nil {
		return err
	}
	tracer().Infof("writing %d syllables to %s", len(syllables), out)
	return os.WriteFile(out, src, 0o644)
}

// tables is the input of tablesTemplate.
type tables struct {
	Source    string
	Syllables []string
	Trie      *dat.DAT
}

// generate builds the trie over syllables and renders the Go source.
func generate(source string, syllables []string) ([]byte, error) {
	builder := dat.NewBuilder()
	for b, s := range syllables {
		if err := builder.Add(s, uint32(b)); err != nil {
			return nil, err
		}
	}
	trie, err := builder.Freeze()
	if err != nil {
		return nil, err
	}
	stats := trie.Stats()
	tracer().Debugf("trie: %d of %d slots used (%.2f)", stats.UsedSlots, stats.TotalSlots, stats.FillRatio())

	var buf bytes.Buffer
	data := tables{Source: source, Syllables: syllables, Trie: trie}
	if err := tablesTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

var tablesTemplate = template.Must(template.New("tables").Funcs(template.FuncMap{
	"syllableRows": syllableRows,
	"alphabetRows": alphabetRows,
	"wordRows":     wordRows,
}).Parse(`// Code generated by bunkgen from {{.Source}}. DO NOT EDIT.

package bunk

import "github.com/npillmayer/bunk/dat"

// syllableTable maps every byte value to its syllable.
var syllableTable = [{{len .Syllables}}]string{
{{syllableRows .Syllables}}}

// syllableTrie is the frozen double-array trie over syllableTable.
var syllableTrie = &dat.DAT{
	Alphabet: dat.Alphabet{
{{alphabetRows .Trie.Alphabet}}	},
	Base: []uint32{
{{wordRows .Trie.Base}}	},
	Check: []uint32{
{{wordRows .Trie.Check}}	},
}
`))

// rows joins items to lines of perLine items each.
func rows[T any](items []T, perLine int, indent string, format func(T) string) string {
	var sb strings.Builder
	for i := 0; i < len(items); i += perLine {
		sb.WriteString(indent)
		for j, item := range items[i:min(i+perLine, len(items))] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(format(item))
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func syllableRows(syllables []string) string {
	return rows(syllables, 8, "\t", func(s string) string { return fmt.Sprintf("%q", s) })
}

func alphabetRows(alphabet dat.Alphabet) string {
	return rows(alphabet[:], 13, "\t\t", func(c uint8) string { return fmt.Sprintf("%d", c) })
}

func wordRows(words []uint32) string {
	return rows(words, 8, "\t\t", func(w uint32) string { return fmt.Sprintf("0x%08x", w) })
}
