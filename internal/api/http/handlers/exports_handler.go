package handlers

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/buddy-service/internal/api/dto"
	"github.com/spec-kit/buddy-service/internal/export"
	"github.com/spec-kit/buddy-service/pkg/util/errorutil"
)

// ExportsHandler turns results the caller already holds into downloads.
type ExportsHandler struct {
	now func() time.Time
}

// NewExportsHandler constructs handler.
func NewExportsHandler() *ExportsHandler {
	return &ExportsHandler{now: time.Now}
}

// Download handles POST /v1/exports/:format.
func (h *ExportsHandler) Download(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Params("format"))
	if err != nil {
		return errorutil.NewValidationError("format must be json or csv", map[string]any{"format": c.Params("format")})
	}

	var req dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, req.Results); err != nil {
		return errorutil.NewInternalError(err)
	}
	c.Attachment(export.Filename(format, h.now()))
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(buf.Bytes())
}
