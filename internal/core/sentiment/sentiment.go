// Package sentiment scores review text against a lexicon
package sentiment

import (
	"strings"

	"airreviews/internal/core/lexicon"
)

// Result explains a score
type Result struct {
	Score   int      `json:"score"`
	Sum     int      `json:"sum"`
	Matched int      `json:"matched"`
	Tokens  []string `json:"tokens"`
}

// Tokenize splits on the space character only and lowercases ASCII letters.
// Tabs and newlines stay inside tokens, consecutive spaces yield empty tokens
func Tokenize(text string) []string {
	toks := strings.Split(text, " ")
	for i, t := range toks {
		toks[i] = asciiLower(t)
	}
	return toks
}

// asciiLower folds A-Z only. strings.ToLower would also fold non-ASCII letters
func asciiLower(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Analyze sums the weights of tokens found in lex and averages them.
// Every occurrence counts, so repeated words weigh more
func Analyze(tokens []string, lex lexicon.Lexicon) Result {
	r := Result{Tokens: tokens}
	for _, t := range tokens {
		if w, ok := lex.Weight(t); ok {
			r.Sum += w
			r.Matched++
		}
	}
	if r.Matched > 0 {
		// Go integer division truncates toward zero
		r.Score = r.Sum / r.Matched
	}
	return r
}

// Score is the truncated average weight of matched tokens, 0 when nothing matches
func Score(tokens []string, lex lexicon.Lexicon) int {
	return Analyze(tokens, lex).Score
}

// ScoreText tokenizes and scores text in one step
func ScoreText(text string, lex lexicon.Lexicon) int {
	return Score(Tokenize(text), lex)
}
