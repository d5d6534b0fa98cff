// internal/extractapp/app.go
package extractapp

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seqpost-core/cds"
	"seqpost-core/fasta"
	"seqpost-core/fileio"
	"seqpost/internal/cli"
	"seqpost/internal/cmdutil"
	"seqpost/internal/config"
	"seqpost/internal/output"
)

const name = "extract-cds"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts cli.ExtractOptions
	cmd := cli.NewExtractCommand(&opts, func(cmd *cobra.Command) error {
		return run(cmd.Context(), cmd, opts, stdout, stderr)
	})
	return cli.Execute(parent, cmd, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, cmd *cobra.Command, opts cli.ExtractOptions, stdout, stderr io.Writer) error {
	settings, err := config.Load(opts.ConfigFile, cmd.Flags())
	if err != nil {
		return cli.Usage(err)
	}
	logger, err := cmdutil.NewLogger(stderr, name, settings.LogLevel)
	if err != nil {
		return cli.Usage(err)
	}
	msg, err := cds.ParseCountTemplate(settings.CountTemplate)
	if err != nil {
		return cli.Usage(err)
	}
	if settings.ConfigFile != "" {
		logger.Debug("loaded config", "path", settings.ConfigFile)
	}

	if err := extract(ctx, logger, opts, msg, stdout); err != nil {
		logger.Error("extraction failed", "err", err)
		return err
	}
	return nil
}

func extract(ctx context.Context, logger *log.Logger, opts cli.ExtractOptions, msg *cds.CountMessage, stdout io.Writer) error {
	genome, err := fasta.LoadIndex(ctx, opts.Input)
	if err != nil {
		return fmt.Errorf("load genome %s: %w", opts.Input, err)
	}
	logger.Debug("genome loaded", "path", opts.Input, "sequences", len(genome))

	ann, err := fileio.Open(opts.GFF)
	if err != nil {
		return fmt.Errorf("open annotation: %w", err)
	}
	defer ann.Close()

	seqOut, err := output.Create(opts.Output, stdout)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer seqOut.Abort()

	res, err := cds.WriteFASTA(ctx, genome, ann, seqOut)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.GFF, err)
	}
	logger.Debug("annotation scanned",
		"lines", res.Stats.Lines, "comments", res.Stats.Comments,
		"short", res.Stats.Short, "other_types", res.Stats.Filtered)

	countOut, err := output.Create(opts.Count, stdout)
	if err != nil {
		return fmt.Errorf("create count file: %w", err)
	}
	defer countOut.Abort()
	if err := msg.Write(countOut, res.Count); err != nil {
		return err
	}

	if err := seqOut.Commit(); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}
	if err := countOut.Commit(); err != nil {
		return fmt.Errorf("write %s: %w", opts.Count, err)
	}
	logger.Info("extracted CDS", "cds", res.Count, "skipped_rows", res.Stats.Short, "output", opts.Output, "count", opts.Count)
	return nil
}
