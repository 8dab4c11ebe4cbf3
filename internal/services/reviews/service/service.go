// Package service provides the reviews cleaning service
package service

import (
	"context"
	"errors"
	"io"
	"time"

	"airreviews/internal/adapters/csvio"
	"airreviews/internal/core/dates"
	"airreviews/internal/core/lexicon"
	"airreviews/internal/core/normalize"
	"airreviews/internal/core/sentiment"
	perr "airreviews/internal/platform/errors"
	"airreviews/internal/platform/logger"
	"airreviews/internal/platform/net/http/bind"
	"airreviews/internal/services/reviews/domain"
)

// Config for the reviews service
type Config struct {
	Columns domain.Columns
	// ProgressEvery logs a progress line every N rows; <=0 -> 10000
	ProgressEvery int
}

// Service implements domain.Cleaner and domain.Runner
type Service struct {
	Lex lexicon.Lexicon
	Cfg Config
}

var now = time.Now // seam

// New constructs the reviews service around a loaded lexicon
func New(lex lexicon.Lexicon, cfg Config) *Service {
	if lex == nil {
		panic("reviews.Service requires a non nil lexicon")
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = 10000
	}
	return &Service{Lex: lex, Cfg: cfg}
}

// Clean implements domain.Cleaner. The date must normalize; title and body are
// sanitized and the sanitized body is scored
func (s *Service) Clean(_ context.Context, in domain.Input) (domain.Cleaned, error) {
	d, err := dates.Normalize(in.Date)
	if err != nil {
		return domain.Cleaned{}, perr.WithField(err, "date")
	}
	body := normalize.StripQuotes(in.Body)
	res := sentiment.Analyze(sentiment.Tokenize(body), s.Lex)
	return domain.Cleaned{
		Date:      d,
		Title:     normalize.StripQuotes(in.Title),
		Body:      body,
		Sentiment: res.Score,
		Matched:   res.Matched,
	}, nil
}

// Run implements domain.Runner. Rows are read, cleaned and written in order.
// The output file only appears once every row has been written
func (s *Service) Run(ctx context.Context, in domain.RunInput) (st domain.RunStats, err error) {
	started := now()
	defer func() {
		st.Elapsed = now().Sub(started)
		if err != nil {
			err = perr.WithOp(err, "reviews.run")
		}
	}()

	if err := bind.ValidateStruct(in); err != nil {
		return st, err
	}

	log := logger.C(ctx).With().Str("in", in.In).Str("out", in.Out).Logger()

	r, closer, err := csvio.OpenFile(in.In, in.Encoding)
	if err != nil {
		return st, err
	}
	defer func() { _ = closer.Close() }()

	layout, err := NewLayout(r.Header(), s.Cfg.Columns)
	if err != nil {
		return st, err
	}

	w, err := csvio.CreateFile(in.Out)
	if err != nil {
		return st, err
	}
	defer w.Abort()

	if err := w.Write(layout.Out); err != nil {
		return st, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return st, perr.Wrap(err, perr.ErrorCodeUnknown, "run cancelled")
		}

		fields, line, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, err
		}
		st.Rows++

		c, err := s.Clean(ctx, layout.Input(fields))
		if err != nil {
			err = perr.WithField(perr.Wrapf(err, perr.CodeOf(err), "line %d", line), s.Cfg.Columns.Date)
			if !in.SkipInvalid {
				return st, err
			}
			st.Skipped++
			log.Warn().Err(err).Int("line", line).Msg("skipping review")
			continue
		}
		if c.Matched > 0 {
			st.Matched++
		}

		if err := w.Write(layout.Row(domain.Record{Line: line, Fields: fields, Cleaned: c})); err != nil {
			return st, err
		}
		st.Written++

		if st.Rows%s.Cfg.ProgressEvery == 0 {
			log.Info().Int("rows", st.Rows).Int("skipped", st.Skipped).Msg("progress")
		}
	}

	if err := w.Commit(); err != nil {
		return st, err
	}

	log.Info().
		Int("rows", st.Rows).
		Int("written", st.Written).
		Int("skipped", st.Skipped).
		Int("matched", st.Matched).
		Dur("elapsed", now().Sub(started)).
		Msg("reviews cleaned")
	return st, nil
}
