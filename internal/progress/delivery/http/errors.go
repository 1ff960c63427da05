package http

import (
	"errors"
	"net/http"

	"completion-planner/internal/checklist"
	"completion-planner/internal/progress"
	"completion-planner/internal/savefile"
	pkgErrors "completion-planner/pkg/errors"
)

var (
	errInvalidGame   = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown game")
	errInvalidFormat = pkgErrors.NewHTTPError(http.StatusBadRequest, "format must be json or markdown")
	errEmptyBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "request body is empty")
	errBodyTooLarge  = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, progress.ErrProfileNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "profile not found")
	case errors.Is(err, progress.ErrInvalidGame):
		return errInvalidGame
	case errors.Is(err, progress.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, checklist.ErrUnknownSection),
		errors.Is(err, checklist.ErrUnknownCheck):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, checklist.ErrGameMismatch),
		errors.Is(err, savefile.ErrUnknownGame),
		errors.Is(err, savefile.ErrMalformed),
		errors.Is(err, savefile.ErrUnknownFormat):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
