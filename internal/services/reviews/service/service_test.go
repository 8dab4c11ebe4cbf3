package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"airreviews/internal/core/dates"
	"airreviews/internal/core/lexicon"
	perr "airreviews/internal/platform/errors"
	kit "airreviews/internal/platform/testkit"
	"airreviews/internal/services/reviews/domain"
)

var testLex = lexicon.Lexicon{"good": 3, "bad": -3, "late": -2}

const header = "Review Date,Airline,Overall_Rating,Review_Title,Review\n"

func newSvc() *Service {
	return New(testLex, Config{Columns: domain.DefaultColumns()})
}

func TestNew_NilLexiconPanics(t *testing.T) {
	kit.MustPanic(t, func() { _ = New(nil, Config{}) })
	if s := New(lexicon.Lexicon{}, Config{}); s.Cfg.ProgressEvery != 10000 {
		t.Fatalf("ProgressEvery default = %d", s.Cfg.ProgressEvery)
	}
}

func TestClean(t *testing.T) {
	s := newSvc()
	got, err := s.Clean(context.Background(), domain.Input{
		Date:  "11th November 2023",
		Title: `"""Something"""`,
		Body:  "  'good food, Good crew, late'  ",
	})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	want := domain.Cleaned{
		Date:      dates.CalendarDate{Year: 2023, Month: time.November, Day: 11},
		Title:     "Something",
		Body:      "good food, Good crew, late",
		Sentiment: 1, // (3 + 3 - 2) / 3; "food," and "crew," keep their commas
		Matched:   3,
	}
	if got != want {
		t.Fatalf("Clean = %+v, want %+v", got, want)
	}
	if got.Date.String() != "2023-11-11" {
		t.Fatalf("ISO = %q", got.Date.String())
	}
}

func TestClean_InvalidDate(t *testing.T) {
	_, err := newSvc().Clean(context.Background(), domain.Input{Date: "30th February 2023"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidDate) || !errors.Is(err, dates.ErrInvalidDate) {
		t.Fatalf("err = %v", err)
	}
	if e, _ := perr.As(err); e.Field() != "date" {
		t.Fatalf("field = %q, want date", e.Field())
	}
}

func TestLayout(t *testing.T) {
	in := []string{"Review Date", "Airline", "Overall_Rating", "Review_Title", "Review"}
	l, err := NewLayout(in, domain.DefaultColumns())
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	wantOut := []string{"Review Date", "Airline", "Overall Rating", "sentiment", "Review Title", "Review"}
	if !reflect.DeepEqual(l.Out, wantOut) {
		t.Fatalf("Out = %q, want %q", l.Out, wantOut)
	}
	if !reflect.DeepEqual(l.In, in) {
		t.Fatalf("input header mutated: %q", l.In)
	}

	row := l.Row(domain.Record{
		Fields: []string{"1st May 2024", "Acme", "7", `"t"`, `"b"`},
		Cleaned: domain.Cleaned{
			Date:      dates.CalendarDate{Year: 2024, Month: time.May, Day: 1},
			Title:     "t",
			Body:      "b",
			Sentiment: -2,
		},
	})
	if want := []string{"2024-05-01", "Acme", "7", "-2", "t", "b"}; !reflect.DeepEqual(row, want) {
		t.Fatalf("Row = %q, want %q", row, want)
	}
}

func TestLayout_AnchorMissingAppends(t *testing.T) {
	cols := domain.DefaultColumns()
	cols.Rename = nil
	l, err := NewLayout([]string{"Review", "Review Date", "Review_Title"}, cols)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if want := []string{"Review", "Review Date", "Review_Title", "sentiment"}; !reflect.DeepEqual(l.Out, want) {
		t.Fatalf("Out = %q", l.Out)
	}
	row := l.Row(domain.Record{Fields: []string{"x", "y", "z"}, Cleaned: domain.Cleaned{Sentiment: 4}})
	if len(row) != 4 || row[3] != "4" {
		t.Fatalf("Row = %q", row)
	}
}

func TestLayout_Errors(t *testing.T) {
	cols := domain.DefaultColumns()
	cases := []struct {
		name   string
		header []string
		field  string
	}{
		{"missing date", []string{"Review_Title", "Review"}, "Review Date"},
		{"missing body", []string{"Review Date", "Review_Title"}, "Review"},
		{"sentiment exists", []string{"Review Date", "Review_Title", "Review", "sentiment"}, "sentiment"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewLayout(c.header, cols)
			e, ok := perr.As(err)
			if !ok {
				t.Fatalf("err = %v, want *perr.Error", err)
			}
			if e.Code() != perr.ErrorCodeInvalidArgument || e.Field() != c.field {
				t.Fatalf("err = %v (field %q), want invalid_argument on %q", err, e.Field(), c.field)
			}
		})
	}
}

func runFiles(t *testing.T, csv string) (string, string) {
	t.Helper()
	in := kit.WriteFile(t, "reviews.csv", csv)
	return in, filepath.Join(filepath.Dir(in), "clean.csv")
}

func TestRun(t *testing.T) {
	in, out := runFiles(t, header+
		`11th November 2023,Acme Air,9,"""Great crew""",good food good seats`+"\n"+
		`1st Febuary 2024,Acme Air,2,'Late',bad BAD service`+"\n"+
		`3rd March 2024,Acme Air,5,Fine,nothing to say`+"\n")

	st, err := newSvc().Run(context.Background(), domain.RunInput{In: in, Out: out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Rows != 3 || st.Written != 3 || st.Skipped != 0 || st.Matched != 2 {
		t.Fatalf("stats = %+v", st)
	}

	want := "Review Date,Airline,Overall Rating,sentiment,Review Title,Review\n" +
		"2023-11-11,Acme Air,9,3,Great crew,good food good seats\n" +
		"2024-02-01,Acme Air,2,-3,Late,bad BAD service\n" +
		"2024-03-03,Acme Air,5,0,Fine,nothing to say\n"
	if got := kit.ReadFile(t, out); got != want {
		t.Fatalf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRun_AbortsOnInvalidDate(t *testing.T) {
	in, out := runFiles(t, header+
		"11th November 2023,A,1,t,b\n"+
		"30th February 2023,A,1,t,b\n")

	st, err := newSvc().Run(context.Background(), domain.RunInput{In: in, Out: out})
	if !errors.Is(err, dates.ErrInvalidDate) {
		t.Fatalf("err = %v, want invalid date", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "Review Date" || e.Op() != "reviews.run" {
		t.Fatalf("field=%q op=%q", e.Field(), e.Op())
	}
	kit.MustContain(t, err.Error(), "line 3")
	if st.Rows != 2 || st.Written != 1 {
		t.Fatalf("stats = %+v", st)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("output should not exist after abort: %v", statErr)
	}
}

func TestRun_SkipInvalid(t *testing.T) {
	in, out := runFiles(t, header+
		"11th November 2023,A,1,t,good\n"+
		"31st April 2023,A,1,t,b\n"+
		"11th Smarch 2023,A,1,t,b\n"+
		"2nd June 2023,A,1,t,bad\n")

	st, err := newSvc().Run(context.Background(), domain.RunInput{In: in, Out: out, SkipInvalid: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Rows != 4 || st.Written != 2 || st.Skipped != 2 || st.Matched != 2 {
		t.Fatalf("stats = %+v", st)
	}
	kit.MustContain(t, kit.ReadFile(t, out), "2023-06-02,A,1,-3,t,bad")
}

func TestRun_ConfigErrors(t *testing.T) {
	s := newSvc()
	ctx := context.Background()

	if _, err := s.Run(ctx, domain.RunInput{In: "x.csv", Out: "x.csv"}); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("same in/out err = %v", err)
	}
	if _, err := s.Run(ctx, domain.RunInput{In: "a.csv", Out: "b.csv", Encoding: "ebcdic"}); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("bad encoding err = %v", err)
	}

	in, out := runFiles(t, "Date,Review\n1st May 2024,x\n")
	_, err := s.Run(ctx, domain.RunInput{In: in, Out: out})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("missing column err = %v", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("output created despite config error")
	}

	_, err = s.Run(ctx, domain.RunInput{In: filepath.Join(t.TempDir(), "none.csv"), Out: out})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing input err = %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	in, out := runFiles(t, header+"11th November 2023,A,1,t,b\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newSvc().Run(ctx, domain.RunInput{In: in, Out: out}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRun_Elapsed(t *testing.T) {
	kit.Serial(t)
	in, out := runFiles(t, header+"11th November 2023,A,1,t,b\n")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	kit.Swap(t, &now, func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	})

	st, err := newSvc().Run(context.Background(), domain.RunInput{In: in, Out: out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Elapsed <= 0 {
		t.Fatalf("Elapsed = %v", st.Elapsed)
	}
}
