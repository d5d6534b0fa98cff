// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"seqpost/internal/version"
)

// Exit codes shared by the tools.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// Common holds flags every tool accepts.
type Common struct {
	ConfigFile string
	LogLevel   string
}

// ExtractOptions holds the extract-cds flags.
type ExtractOptions struct {
	Common
	Input         string
	GFF           string
	Output        string
	Count         string
	CountTemplate string
}

// LongestOptions holds the longest-contig flags.
type LongestOptions struct {
	Common
	Input  string
	Output string
}

// RunFunc is the body of a command. It receives the parsed command so it can
// hand the flag set to the config layer.
type RunFunc func(cmd *cobra.Command) error

func addCommon(cmd *cobra.Command, c *Common) {
	fs := cmd.Flags()
	fs.StringVar(&c.ConfigFile, "config", "", "settings file (YAML, JSON or TOML)")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug | info | warn | error")
}

func newCommand(use, short string, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.Flags().SortFlags = false
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := run(cmd); err != nil {
			return &runError{err: err}
		}
		return nil
	}
	return cmd
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		if err := cmd.MarkFlagRequired(n); err != nil {
			panic(err) // flag registered above; unreachable
		}
	}
}

// NewExtractCommand builds the extract-cds command writing into o.
func NewExtractCommand(o *ExtractOptions, run RunFunc) *cobra.Command {
	cmd := newCommand("extract-cds", "Extract CDS sequences from a genome using a GFF annotation", func(cmd *cobra.Command) error {
		if err := o.Validate(); err != nil {
			return Usage(err)
		}
		return run(cmd)
	})
	fs := cmd.Flags()
	fs.StringVarP(&o.Input, "input", "i", "", "genome FASTA file (gzip ok, '-' = stdin)")
	fs.StringVarP(&o.GFF, "gff", "a", "", "GFF annotation file (gzip ok, '-' = stdin)")
	fs.StringVarP(&o.Output, "output", "o", "", "output CDS FASTA file ('-' = stdout)")
	fs.StringVarP(&o.Count, "count", "c", "", "CDS count file ('-' = stdout)")
	fs.StringVar(&o.CountTemplate, "count-template", "", "count line template, e.g. '{{.Count}} CDS' (default from config)")
	addCommon(cmd, &o.Common)
	markRequired(cmd, "input", "gff", "output", "count")
	return cmd
}

// NewLongestCommand builds the longest-contig command writing into o.
func NewLongestCommand(o *LongestOptions, run RunFunc) *cobra.Command {
	cmd := newCommand("longest-contig", "Extract the longest contig from an assembly FASTA file", func(cmd *cobra.Command) error {
		if err := o.Validate(); err != nil {
			return Usage(err)
		}
		return run(cmd)
	})
	fs := cmd.Flags()
	fs.StringVarP(&o.Input, "input", "i", "", "contigs FASTA file (gzip ok, '-' = stdin)")
	fs.StringVarP(&o.Output, "output", "o", "", "output FASTA file ('-' = stdout)")
	addCommon(cmd, &o.Common)
	markRequired(cmd, "input", "output")
	return cmd
}

// Validate checks combinations the flag parser cannot.
func (o ExtractOptions) Validate() error {
	if o.Input == "-" && o.GFF == "-" {
		return errors.New("--input and --gff cannot both read stdin")
	}
	if o.Output == "-" && o.Count == "-" {
		return errors.New("--output and --count cannot both write stdout")
	}
	if o.Output != "-" && o.Output == o.Count {
		return fmt.Errorf("--output and --count both name %q", o.Output)
	}
	return nil
}

// Validate checks combinations the flag parser cannot.
func (o LongestOptions) Validate() error {
	if o.Input != "-" && o.Input == o.Output {
		return fmt.Errorf("--input and --output both name %q", o.Input)
	}
	return nil
}
