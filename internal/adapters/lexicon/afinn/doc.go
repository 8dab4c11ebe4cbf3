// Package afinn provides lexicon sources for AFINN style word lists: a plain HTTP fetcher,
// an on disk cached fetcher with conditional revalidation, and a local file source.
//
// All sources satisfy lexicon.Source
package afinn
