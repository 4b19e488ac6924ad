package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/bunk"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'bunk.cmd'
func tracer() tracing.Trace {
	return tracing.Select("bunk.cmd")
}

// options are shared by all subcommands.
type options struct {
	configFile string
	wordLen    uint8
	checksum   bunk.Checksum
	decorate   bool
	hex        bool
	settings   bunk.Settings // effective settings, after config file and flags
}

func newRootCmd() *cobra.Command {
	opts := &options{
		wordLen:  bunk.DefaultSettings().WordLen,
		checksum: bunk.DefaultSettings().Checksum,
	}
	rootCmd := &cobra.Command{
		Use:   "bunk",
		Short: "Bunk encodes binary data as pronounceable text",
		Long: `Bunk encodes binary data, such as keys or tokens, as pronounceable
gibberish which can be read aloud or typed, and decodes it back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd.Flags())
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML file with encoder settings")
	flags.Uint8Var(&opts.wordLen, "word-len", opts.wordLen, "maximum syllables per word (0 = unlimited)")
	flags.Var(&checksumValue{c: &opts.checksum}, "checksum", "checksum bytes: disabled, 1, 2, 3 or 4")
	flags.BoolVar(&opts.decorate, "decorate", false, "decorate with commas, periods and capitals")
	flags.BoolVar(&opts.hex, "hex", false, "binary data is read/written as hex")

	rootCmd.AddCommand(newEncodeCmd(opts))
	rootCmd.AddCommand(newDecodeCmd(opts))
	rootCmd.AddCommand(newSyllablesCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// fileConfig is the layout of the YAML settings file.
type fileConfig struct {
	WordLen  *uint8         `yaml:"word_len"`
	Checksum *bunk.Checksum `yaml:"checksum"`
	Decorate *bool          `yaml:"decorate"`
}

// resolve computes the effective settings: defaults, overridden by the
// config file, overridden by flags given on the command line.
func (opts *options) resolve(flags *pflag.FlagSet) error {
	opts.settings = bunk.DefaultSettings()
	if opts.configFile != "" {
		data, err := os.ReadFile(opts.configFile)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		var cfg fileConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing config %s: %w", opts.configFile, err)
		}
		if cfg.WordLen != nil {
			opts.settings.WordLen = *cfg.WordLen
		}
		if cfg.Checksum != nil {
			opts.settings.Checksum = *cfg.Checksum
		}
		if cfg.Decorate != nil {
			opts.settings.Decorate = *cfg.Decorate
		}
	}
	if flags.Changed("word-len") {
		opts.settings.WordLen = opts.wordLen
	}
	if flags.Changed("checksum") {
		opts.settings.Checksum = opts.checksum
	}
	if flags.Changed("decorate") {
		opts.settings.Decorate = opts.decorate
	}
	tracer().Debugf("effective settings: %+v", opts.settings)
	return nil
}

// checksumValue adapts bunk.Checksum to pflag.Value.
type checksumValue struct {
	c *bunk.Checksum
}

func (v *checksumValue) String() string {
	if v.c == nil {
		return bunk.DefaultSettings().Checksum.String()
	}
	return v.c.String()
}

func (v *checksumValue) Set(s string) error {
	return v.c.UnmarshalText([]byte(s))
}

func (v *checksumValue) Type() string {
	return "checksum"
}
