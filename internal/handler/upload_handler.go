package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"helpdesk/internal/errors"
	"helpdesk/internal/middleware"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

// UploadHandler stores multipart uploads on local disk and records an
// attachment row, optionally linked to a ticket.
type UploadHandler struct {
	attachmentRepo repository.AttachmentRepository
	uploadDir      string
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(attachmentRepo repository.AttachmentRepository, uploadDir string) *UploadHandler {
	return &UploadHandler{
		attachmentRepo: attachmentRepo,
		uploadDir:      uploadDir,
	}
}

// Upload godoc
// @Summary Upload a file
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File"
// @Param ticket_id formData string false "Ticket to attach to"
// @Success 201 {object} model.Attachment
// @Failure 400 {object} errors.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	uploaderID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file is required",
			Code:  "FILE_REQUIRED",
		})
	}

	ticketID, err := optionalUUID(c.FormValue("ticket_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid ticket_id", Code: "INVALID_ID"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read upload")
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to prepare upload dir")
	}

	storedName := fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, storedName))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store file")
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store file")
	}

	attachment := &model.Attachment{
		TicketID:   ticketID,
		FileName:   fileHeader.Filename,
		StoredName: storedName,
		Size:       size,
		UploadedBy: uploaderID,
	}
	if err := h.attachmentRepo.Create(c.Request().Context(), attachment); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, attachment)
}
