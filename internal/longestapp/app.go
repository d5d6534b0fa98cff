// internal/longestapp/app.go
package longestapp

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seqpost-core/contig"
	"seqpost-core/fasta"
	"seqpost/internal/cli"
	"seqpost/internal/cmdutil"
	"seqpost/internal/config"
	"seqpost/internal/output"
)

const name = "longest-contig"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts cli.LongestOptions
	cmd := cli.NewLongestCommand(&opts, func(cmd *cobra.Command) error {
		return run(cmd.Context(), cmd, opts, stdout, stderr)
	})
	return cli.Execute(parent, cmd, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, cmd *cobra.Command, opts cli.LongestOptions, stdout, stderr io.Writer) error {
	settings, err := config.Load(opts.ConfigFile, cmd.Flags())
	if err != nil {
		return cli.Usage(err)
	}
	logger, err := cmdutil.NewLogger(stderr, name, settings.LogLevel)
	if err != nil {
		return cli.Usage(err)
	}

	best, n, err := contig.LongestPath(ctx, opts.Input)
	if err != nil {
		err = fmt.Errorf("%s: %w", opts.Input, err)
		logger.Error("selection failed", "err", err)
		return err
	}
	logger.Debug("contigs loaded", "path", opts.Input, "records", n)

	out, err := output.Create(opts.Output, stdout)
	if err != nil {
		logger.Error("create output", "err", err)
		return err
	}
	defer out.Abort()
	if err := fasta.Write(out, best); err != nil {
		logger.Error("write output", "err", err)
		return err
	}
	if err := out.Commit(); err != nil {
		logger.Error("write output", "path", opts.Output, "err", err)
		return err
	}
	logger.Info("longest contig", "id", best.ID, "length", best.Len(), "records", n, "output", opts.Output)
	return nil
}
