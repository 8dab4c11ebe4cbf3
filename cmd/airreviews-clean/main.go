// Command airreviews-clean normalizes an airline reviews CSV and adds a sentiment column
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"airreviews/internal/adapters/lexicon/afinn"
	"airreviews/internal/core/lexicon"
	"airreviews/internal/modkit"
	"airreviews/internal/modkit/module"
	"airreviews/internal/platform/config"
	"airreviews/internal/platform/logger"

	reviewsdom "airreviews/internal/services/reviews/domain"
	reviewsmod "airreviews/internal/services/reviews/module"

	"github.com/google/uuid"
)

// parseFlags overlays command line flags on env derived options
func parseFlags(args []string, opts reviewsmod.Options, out io.Writer) (reviewsmod.Options, error) {
	fs := flag.NewFlagSet("airreviews-clean", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.Run.In, "in", opts.Run.In, "input CSV path (CORE_CLEAN_IN)")
	fs.StringVar(&opts.Run.Out, "out", opts.Run.Out, "output CSV path (CORE_CLEAN_OUT)")
	fs.StringVar(&opts.Run.Encoding, "encoding", opts.Run.Encoding, "input encoding: utf-8 | windows-1252 | latin1")
	fs.StringVar(&opts.Lexicon.Source, "lexicon", opts.Lexicon.Source, "lexicon URL or file path (CORE_LEXICON_SOURCE)")
	fs.BoolVar(&opts.Run.SkipInvalid, "skip-invalid", opts.Run.SkipInvalid, "drop rows with unparseable dates instead of aborting")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func main() {
	lo := logger.FromEnv()
	if lo.Service == "" {
		lo.Service = "airreviews-clean"
	}
	logger.Init(lo)
	l := logger.Get()

	root := config.New()
	opts, err := parseFlags(os.Args[1:], reviewsmod.FromConfig(root), os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if err := opts.Validate(); err != nil {
		l.Fatal().Err(err).Msg("invalid options")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithRun(ctx, uuid.NewString())
	log := logger.C(ctx)

	// a run without a lexicon would score every review 0
	snap, err := lexicon.Load(ctx, afinn.NewSource(opts.Lexicon.SourceOptions()))
	if err != nil {
		log.Fatal().Err(err).Str("source", opts.Lexicon.Source).Msg("lexicon load failed")
	}

	m := reviewsmod.New(modkit.Deps{Log: l, Cfg: root, Lexicon: snap}, opts)
	module.Register(m.Name(), m.Ports())
	runner := module.MustPortsOf[reviewsdom.Runner](m)

	st, err := runner.Run(ctx, opts.Run)
	if err != nil {
		log.Fatal().Err(err).Int("rows", st.Rows).Int("written", st.Written).Msg("clean failed")
	}
	log.Info().
		Int("rows", st.Rows).
		Int("written", st.Written).
		Int("skipped", st.Skipped).
		Int("matched", st.Matched).
		Dur("elapsed", st.Elapsed).
		Msg("done")
}
