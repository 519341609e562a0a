package http

import (
	"errors"
	"net/http"

	"gems-assistant/internal/intent"
	pkgErrors "gems-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrIntentNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, intent.ErrDuplicateTag):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, intent.ErrTagRequired),
		errors.Is(err, intent.ErrNoResponses),
		errors.Is(err, intent.ErrTopicRequired),
		errors.Is(err, intent.ErrDetailsRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
