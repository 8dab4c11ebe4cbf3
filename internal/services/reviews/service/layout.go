package service

import (
	"strconv"

	perr "airreviews/internal/platform/errors"
	pstrings "airreviews/internal/platform/strings"
	"airreviews/internal/services/reviews/domain"
)

// Layout maps an input header to the output header
type Layout struct {
	In  []string
	Out []string

	date, title, body int
	anchor            int // input index the sentiment column follows, -1 appends
}

// NewLayout resolves the configured columns against header. Every configured input
// column must be present and the sentiment column must not be
func NewLayout(header []string, cols domain.Columns) (Layout, error) {
	l := Layout{In: header, anchor: pstrings.Index(header, cols.After)}

	for _, c := range []struct {
		name string
		dst  *int
	}{
		{cols.Date, &l.date},
		{cols.Title, &l.title},
		{cols.Body, &l.body},
	} {
		i := pstrings.Index(header, c.name)
		if i < 0 {
			return Layout{}, perr.WithField(perr.InvalidArgf("input header has no %q column", c.name), c.name)
		}
		*c.dst = i
	}
	if pstrings.Index(header, cols.Sentiment) >= 0 {
		return Layout{}, perr.WithField(perr.InvalidArgf("input already has a %q column", cols.Sentiment), cols.Sentiment)
	}

	l.Out = pstrings.Rename(pstrings.InsertAfter(header, cols.After, cols.Sentiment), cols.Rename)
	return l, nil
}

// Input picks the three cleaner fields out of a raw row
func (l Layout) Input(fields []string) domain.Input {
	return domain.Input{Date: fields[l.date], Title: fields[l.title], Body: fields[l.body]}
}

// Row renders rec in output column order
func (l Layout) Row(rec domain.Record) []string {
	out := make([]string, 0, len(l.Out))
	score := strconv.Itoa(rec.Sentiment)
	for i, v := range rec.Fields {
		switch i {
		case l.date:
			v = rec.Date.String()
		case l.title:
			v = rec.Title
		case l.body:
			v = rec.Body
		}
		out = append(out, v)
		if i == l.anchor {
			out = append(out, score)
		}
	}
	if l.anchor < 0 {
		out = append(out, score)
	}
	return out
}
