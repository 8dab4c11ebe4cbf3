// Package csvio reads and writes review CSV files. Input may be UTF-8 (BOM stripped),
// Windows-1252 or Latin-1 and is decoded to UTF-8 before parsing; output is always UTF-8
package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	perr "airreviews/internal/platform/errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported input encodings
const (
	UTF8        = "utf-8"
	Windows1252 = "windows-1252"
	Latin1      = "latin1"
)

// Encodings lists the accepted encoding names
var Encodings = []string{UTF8, Windows1252, Latin1}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", UTF8, "utf8":
		return unicode.UTF8BOM, nil
	case Windows1252, "cp1252":
		return charmap.Windows1252, nil
	case Latin1, "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, perr.InvalidArgf("csvio: unsupported encoding %q", name)
	}
}

// Reader yields CSV records after the header row
type Reader struct {
	r      *csv.Reader
	header []string
}

// NewReader decodes src with enc and consumes the header row
func NewReader(src io.Reader, enc string) (*Reader, error) {
	e, err := lookupEncoding(enc)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(src, e.NewDecoder()))
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, perr.InvalidArgf("csvio: input has no header row")
	}
	if err != nil {
		return nil, parseErr(err)
	}
	return &Reader{r: cr, header: header}, nil
}

// Header returns the header row
func (r *Reader) Header() []string { return r.header }

// Next returns the next record and its 1-based line in the input; io.EOF when done
func (r *Reader) Next() ([]string, int, error) {
	rec, err := r.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, io.EOF
	}
	if err != nil {
		return nil, lineOf(err), parseErr(err)
	}
	line, _ := r.r.FieldPos(0)
	return rec, line, nil
}

func lineOf(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}

func parseErr(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "csvio: malformed csv at line %d", pe.Line)
	}
	return perr.Wrap(err, perr.ErrorCodeIO, "csvio: read failed")
}

// Writer writes UTF-8 CSV records
type Writer struct {
	w *csv.Writer
}

// NewWriter wraps dst
func NewWriter(dst io.Writer) *Writer { return &Writer{w: csv.NewWriter(dst)} }

// Write writes one record
func (w *Writer) Write(rec []string) error {
	if err := w.w.Write(rec); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "csvio: write failed")
	}
	return nil
}

// Flush flushes buffered records and reports any write error
func (w *Writer) Flush() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "csvio: flush failed")
	}
	return nil
}

// OpenFile opens path for reading; the caller closes the returned file
func OpenFile(path, enc string) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "csvio: input %s not found", path)
	}
	if err != nil {
		return nil, nil, perr.Wrapf(err, perr.ErrorCodeIO, "csvio: open %s", path)
	}
	r, err := NewReader(f, enc)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return r, f, nil
}

// FileWriter writes to path.part and renames onto path on Commit so readers never
// see a half written file
type FileWriter struct {
	*Writer
	f    *os.File
	path string
	done bool
}

// CreateFile starts an atomic write to path
func CreateFile(path string) (*FileWriter, error) {
	f, err := os.Create(path + ".part")
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "csvio: create %s", path)
	}
	return &FileWriter{Writer: NewWriter(f), f: f, path: path}, nil
}

// Commit flushes, closes and renames the part file onto the final path
func (fw *FileWriter) Commit() error {
	if fw.done {
		return nil
	}
	fw.done = true
	if err := fw.Flush(); err != nil {
		_ = fw.f.Close()
		_ = os.Remove(fw.f.Name())
		return err
	}
	if err := fw.f.Close(); err != nil {
		_ = os.Remove(fw.f.Name())
		return perr.Wrapf(err, perr.ErrorCodeIO, "csvio: close %s", fw.f.Name())
	}
	if err := os.Rename(fw.f.Name(), fw.path); err != nil {
		_ = os.Remove(fw.f.Name())
		return perr.Wrapf(err, perr.ErrorCodeIO, "csvio: rename onto %s", fw.path)
	}
	return nil
}

// Abort discards the part file. Safe after Commit
func (fw *FileWriter) Abort() {
	if fw.done {
		return
	}
	fw.done = true
	_ = fw.f.Close()
	_ = os.Remove(fw.f.Name())
}
