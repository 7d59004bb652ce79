package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Nithish-ponnusamy/final-devops/internal/middleware"
	"github.com/Nithish-ponnusamy/final-devops/internal/model"
	"github.com/Nithish-ponnusamy/final-devops/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "username and password are required")
	}
	if len(req.Password) < 8 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "password must be at least 8 characters")
	}

	if err := h.svc.Register(c.Context(), username, req.Password); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "USER_EXISTS", "Username already taken")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Error creating user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user created"})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "username and password are required")
	}

	token, err := h.svc.Login(c.Context(), username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid password")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Error logging in")
	}

	return c.JSON(model.LoginResponse{Token: token})
}
