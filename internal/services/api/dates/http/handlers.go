// Package http provides http transport for date normalization
package http

import (
	stdhttp "net/http"

	"airreviews/internal/core/dates"
	"airreviews/internal/modkit/httpkit"
	perr "airreviews/internal/platform/errors"
)

// Register mounts date endpoints on the given router
func Register(r httpkit.Router) {
	httpkit.PostJSON(r, "/normalize", normalize)
}

// NormalizeRequest is a free text review date
type NormalizeRequest struct {
	Date string `json:"date" validate:"required" example:"1st Febuary 2024"`
}

// NormalizeResponse is the parsed calendar date
type NormalizeResponse struct {
	Year    int    `json:"year"    example:"2024"`
	Month   int    `json:"month"   example:"2"`
	Day     int    `json:"day"     example:"1"`
	ISO     string `json:"iso"     example:"2024-02-01"`
	Ordinal string `json:"ordinal" example:"1st February 2024"`
}

// @Summary Normalize a review date
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body NormalizeRequest true "Date"
// @Success 200 {object} NormalizeResponse "ok"
// @Failure 422 {object} httpkit.Envelope "invalid date"
// @Router /dates/normalize [post]
func normalize(_ *stdhttp.Request, in NormalizeRequest) (any, error) {
	d, err := dates.Normalize(in.Date)
	if err != nil {
		return nil, perr.WithField(err, "date")
	}
	return NormalizeResponse{
		Year:    d.Year,
		Month:   int(d.Month),
		Day:     d.Day,
		ISO:     d.String(),
		Ordinal: d.Ordinal(),
	}, nil
}
