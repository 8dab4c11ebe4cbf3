// Package lexicon parses word/score lists (AFINN style) and loads them from a Source
package lexicon

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	perr "airreviews/internal/platform/errors"
	"airreviews/internal/platform/logger"
)

// Lexicon maps a lowercase word to its sentiment weight. Read-only after Parse
type Lexicon map[string]int

// Weight returns the weight of word and whether it is present
func (l Lexicon) Weight(word string) (int, bool) {
	w, ok := l[word]
	return w, ok
}

// Stats counts what Parse saw
type Stats struct {
	Lines      int `json:"lines"`
	Entries    int `json:"entries"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
}

const maxLineSize = 1 << 20

// Parse reads "word<TAB>score" lines. Lines with fewer than two tab fields, an empty word
// or a score outside int8 are skipped and counted. Fields after the score are ignored
// and a repeated word keeps the last score. Only read failures return an error
func Parse(r io.Reader) (Lexicon, Stats, error) {
	lex := Lexicon{}
	var st Stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	log := logger.Named("lexicon")

	for sc.Scan() {
		st.Lines++
		line := sc.Text()
		word, score, ok := parseLine(line)
		if !ok {
			st.Skipped++
			log.Debug().Int("line", st.Lines).Str("text", line).Msg("skipping malformed lexicon line")
			continue
		}
		if _, dup := lex[word]; dup {
			st.Duplicates++
		}
		lex[word] = score
	}
	if err := sc.Err(); err != nil {
		return nil, st, perr.Wrapf(err, perr.ErrorCodeIO, "read lexicon line %d", st.Lines+1)
	}
	st.Entries = len(lex)
	return lex, st, nil
}

func parseLine(line string) (string, int, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 || fields[0] == "" {
		return "", 0, false
	}
	n, err := strconv.ParseInt(fields[1], 10, 8)
	if err != nil {
		return "", 0, false
	}
	return fields[0], int(n), true
}

// Source opens a lexicon stream. Name identifies the source in logs and meta endpoints
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// Snapshot is a loaded lexicon plus provenance
type Snapshot struct {
	Lexicon  Lexicon   `json:"-"`
	Stats    Stats     `json:"stats"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Size returns the number of entries
func (s *Snapshot) Size() int {
	if s == nil {
		return 0
	}
	return len(s.Lexicon)
}

var now = time.Now // seam

// Load opens src once and parses it. A lexicon with no entries is an ErrorCodeLexicon error
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, perr.WithOp(err, "lexicon.load")
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			logger.C(ctx).Warn().Err(cerr).Str("source", src.Name()).Msg("close lexicon source")
		}
	}()

	lex, st, err := Parse(rc)
	if err != nil {
		return nil, perr.WithOp(err, "lexicon.load")
	}
	if len(lex) == 0 {
		return nil, perr.Newf(perr.ErrorCodeLexicon, "lexicon from %s is empty (%d lines, %d skipped)", src.Name(), st.Lines, st.Skipped)
	}

	logger.C(ctx).Info().
		Str("source", src.Name()).
		Int("entries", st.Entries).
		Int("skipped", st.Skipped).
		Int("duplicates", st.Duplicates).
		Msg("lexicon loaded")

	return &Snapshot{Lexicon: lex, Stats: st, Source: src.Name(), LoadedAt: now().UTC()}, nil
}
