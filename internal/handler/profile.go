package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Nithish-ponnusamy/final-devops/internal/middleware"
	"github.com/Nithish-ponnusamy/final-devops/internal/model"
	"github.com/Nithish-ponnusamy/final-devops/internal/scraper"
	"github.com/Nithish-ponnusamy/final-devops/internal/service"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetProfile handles POST /get_profile
func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	var req model.ProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}

	username, errMsg := middleware.ValidateUsername(req.Username)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	rec, err := h.svc.Fetch(c.Context(), username)
	if err != nil {
		var se *scraper.ScrapeError
		if errors.As(err, &se) {
			Metrics.ScrapesTotal.WithLabelValues(se.Reason).Inc()
			middleware.Logger.Error().
				Str("username", username).
				Str("reason", se.Reason).
				Err(err).
				Msg("profile scrape failed")
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "SCRAPE_FAILED", "Error fetching profile data")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Error fetching profile data")
	}

	Metrics.ScrapesTotal.WithLabelValues("ok").Inc()
	return c.JSON(rec)
}
