// Package domain defines the types and ports for the reviews service
package domain

import (
	"time"

	"airreviews/internal/core/dates"
)

// Input is the three free text fields the cleaner reads from one review
type Input struct {
	Date  string `json:"date"  validate:"required" example:"11th November 2023"`
	Title string `json:"title" example:"\"Comfortable and on time\""`
	Body  string `json:"body"  example:"good seats and friendly crew"`
}

// Cleaned is the normalized form of an Input
type Cleaned struct {
	Date      dates.CalendarDate
	Title     string
	Body      string
	Sentiment int
	// Matched is how many body tokens were found in the lexicon
	Matched int
}

// Record is one CSV row plus its cleaned fields
type Record struct {
	Line   int      // 1-based line in the input file
	Fields []string // raw values in input header order
	Cleaned
}

// Columns configures which input columns are read and how the output header is shaped
type Columns struct {
	Date      string            `json:"date_column"      validate:"required"`
	Title     string            `json:"title_column"     validate:"required"`
	Body      string            `json:"body_column"      validate:"required"`
	Sentiment string            `json:"sentiment_column" validate:"required"`
	After     string            `json:"sentiment_after"`
	Rename    map[string]string `json:"rename"`
}

// DefaultColumns matches the airline reviews dataset
func DefaultColumns() Columns {
	return Columns{
		Date:      "Review Date",
		Title:     "Review_Title",
		Body:      "Review",
		Sentiment: "sentiment",
		After:     "Overall_Rating",
		Rename: map[string]string{
			"Overall_Rating": "Overall Rating",
			"Review_Title":   "Review Title",
		},
	}
}

// RunInput describes one batch run
type RunInput struct {
	In       string `json:"in"       validate:"required"`
	Out      string `json:"out"      validate:"required,nefield=In"`
	Encoding string `json:"encoding" validate:"omitempty,oneof=utf-8 windows-1252 latin1"`
	// SkipInvalid drops rows whose date cannot be normalized instead of aborting
	SkipInvalid bool `json:"skip_invalid"`
}

// RunStats summarizes a batch run
type RunStats struct {
	Rows    int           `json:"rows"`
	Written int           `json:"written"`
	Skipped int           `json:"skipped"`
	Matched int           `json:"matched"` // rows whose body hit at least one lexicon word
	Elapsed time.Duration `json:"elapsed"`
}
