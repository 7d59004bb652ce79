package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Nithish-ponnusamy/final-devops/internal/middleware"
	"github.com/Nithish-ponnusamy/final-devops/internal/model"
	"github.com/Nithish-ponnusamy/final-devops/internal/service"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req model.ChatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}

	message, errMsg := middleware.ValidateChatMessage(req.Message)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	reply, err := h.svc.Send(c.Context(), message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyReply) {
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "EMPTY_REPLY", "Model returned no content")
		}
		middleware.Logger.Error().Err(err).Msg("chat upstream failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Error processing chat request")
	}

	return c.JSON(model.ChatResponse{Reply: reply})
}
