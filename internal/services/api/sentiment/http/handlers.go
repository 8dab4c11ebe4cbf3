// Package http provides http transport for sentiment scoring
package http

import (
	stdhttp "net/http"

	"airreviews/internal/core/lexicon"
	"airreviews/internal/core/sentiment"
	"airreviews/internal/modkit/httpkit"
)

// Register mounts sentiment endpoints on the given router
func Register(r httpkit.Router, lex lexicon.Lexicon) {
	h := &handlers{lex: lex}
	httpkit.PostJSON(r, "/score", h.score)
}

type handlers struct{ lex lexicon.Lexicon }

// ScoreRequest is text to score
type ScoreRequest struct {
	Text string `json:"text" validate:"required" example:"good food bad seats good crew"`
}

// @Summary Score text against the lexicon
// @Tags Sentiment
// @Accept json
// @Produce json
// @Param payload body ScoreRequest true "Text"
// @Success 200 {object} sentiment.Result "ok"
// @Router /sentiment/score [post]
func (h *handlers) score(_ *stdhttp.Request, in ScoreRequest) (any, error) {
	return sentiment.Analyze(sentiment.Tokenize(in.Text), h.lex), nil
}
