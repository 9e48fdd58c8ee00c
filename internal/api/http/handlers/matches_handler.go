package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/buddy-service/internal/api/dto"
	"github.com/spec-kit/buddy-service/internal/roster"
	"github.com/spec-kit/buddy-service/internal/service"
	"github.com/spec-kit/buddy-service/pkg/util/errorutil"
)

// MatchesHandler exposes the matcher.
type MatchesHandler struct {
	matching *service.MatchingService
}

// NewMatchesHandler constructs handler.
func NewMatchesHandler(matching *service.MatchingService) *MatchesHandler {
	return &MatchesHandler{matching: matching}
}

// Create handles POST /v1/matches. The body is a JSON or YAML roster.
func (h *MatchesHandler) Create(c *fiber.Ctx) error {
	var opts service.RunOptions
	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return errorutil.NewValidationError("seed must be an unsigned integer", map[string]any{"seed": raw})
		}
		opts.Seed = &seed
	}

	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return errorutil.NewValidationError("roster body required", nil)
	}

	format := roster.FormatFromContentType(c.Get(fiber.HeaderContentType))
	run, err := h.matching.RunReader(c.UserContext(), bytes.NewReader(body), format, opts)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMatchRunResponse(run)})
}
