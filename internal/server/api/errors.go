package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pairspace/loveos/internal/common"
)

// httpError maps application errors onto HTTP status codes. Not-found is a
// legitimate empty state for several endpoints and gets a 404 the client
// turns back into an explicit "none yet" value.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrUnknownSpace), errors.Is(err, common.ErrInvalidPasscode):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid space or passcode")
	case errors.Is(err, common.ErrStorageUpload):
		return echo.NewHTTPError(http.StatusBadGateway, "storage upload failed")
	case errors.Is(err, common.ErrAttachmentTooBig):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "attachment exceeds size limit")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
