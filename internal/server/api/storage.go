package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pairspace/loveos/internal/common"
)

// MaxAttachmentSize is the upload cap for photo attachments.
const MaxAttachmentSize = 5 * 1024 * 1024

type uploadResponse struct {
	URL string `json:"url"`
}

// handleUpload accepts a multipart "file" part, stores it in the object
// store, and returns the public URL. This is the only endpoint touching
// binary storage; a failure here never leaves a table-store record behind.
func (s *Server) handleUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file part")
	}
	if fh.Size > MaxAttachmentSize {
		return httpError(common.ErrAttachmentTooBig)
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file part")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxAttachmentSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file part")
	}
	if len(data) > MaxAttachmentSize {
		return httpError(common.ErrAttachmentTooBig)
	}

	url, err := s.uploader.Upload(c.Request().Context(), fh.Filename, data)
	if err != nil {
		s.logger.Error(c.Request().Context(), "upload failed", "name", fh.Filename, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}
