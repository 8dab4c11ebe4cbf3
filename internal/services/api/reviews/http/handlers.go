// Package http provides http transport for single review cleaning
package http

import (
	stdhttp "net/http"

	"airreviews/internal/modkit/httpkit"
	"airreviews/internal/services/reviews/domain"
)

// Register mounts review endpoints on the given router
func Register(r httpkit.Router, c domain.Cleaner) {
	h := &handlers{cleaner: c}
	httpkit.PostJSON(r, "/clean", h.clean)
}

type handlers struct{ cleaner domain.Cleaner }

// CleanResponse is a cleaned review
type CleanResponse struct {
	Date      string `json:"date"      example:"11th November 2023"`
	DateISO   string `json:"date_iso"  example:"2023-11-11"`
	Title     string `json:"title"     example:"Comfortable and on time"`
	Body      string `json:"body"      example:"good seats and friendly crew"`
	Sentiment int    `json:"sentiment" example:"2"`
	Matched   int    `json:"matched"   example:"2"`
}

// @Summary Clean one review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Review"
// @Success 200 {object} CleanResponse "ok"
// @Failure 422 {object} httpkit.Envelope "invalid date"
// @Router /reviews/clean [post]
func (h *handlers) clean(r *stdhttp.Request, in domain.Input) (any, error) {
	c, err := h.cleaner.Clean(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return CleanResponse{
		Date:      c.Date.Ordinal(),
		DateISO:   c.Date.String(),
		Title:     c.Title,
		Body:      c.Body,
		Sentiment: c.Sentiment,
		Matched:   c.Matched,
	}, nil
}
