package net

import (
	"net/http"

	perr "airreviews/internal/platform/errors"
)

// HTTPStatus maps a project error to http status, 200 for nil
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
