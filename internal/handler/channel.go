package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Nithish-ponnusamy/final-devops/internal/middleware"
	"github.com/Nithish-ponnusamy/final-devops/internal/service"
	"github.com/Nithish-ponnusamy/final-devops/internal/youtube"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// GetByName handles GET /api/channel/:channelName
func (h *ChannelHandler) GetByName(c fiber.Ctx) error {
	channelName, errMsg := middleware.ValidateChannelName(c.Params("channelName"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	rec, err := h.svc.Fetch(c.Context(), channelName)
	if err != nil {
		if errors.Is(err, youtube.ErrNotFound) {
			Metrics.AggregationsTotal.WithLabelValues("not_found").Inc()
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Channel not found")
		}
		var ue *youtube.UpstreamError
		if errors.As(err, &ue) {
			Metrics.AggregationsTotal.WithLabelValues("upstream_error").Inc()
			middleware.Logger.Error().
				Str("channel", channelName).
				Str("endpoint", ue.Endpoint).
				Int("upstream_status", ue.Status).
				Err(err).
				Msg("channel aggregation failed")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Error fetching channel data")
	}

	Metrics.AggregationsTotal.WithLabelValues("ok").Inc()
	return c.JSON(rec)
}
