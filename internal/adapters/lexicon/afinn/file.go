package afinn

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"airreviews/internal/core/lexicon"
	perr "airreviews/internal/platform/errors"
)

// FileSource reads a lexicon from a local path
type FileSource struct {
	Path string
}

var _ lexicon.Source = FileSource{}

// Name returns the path
func (s FileSource) Name() string { return s.Path }

// Open opens the file
func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "afinn: lexicon file %s not found", s.Path)
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "afinn: open %s", s.Path)
	}
	return f, nil
}
