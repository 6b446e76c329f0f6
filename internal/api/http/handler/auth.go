package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/carelinkhq/carelink_backend/internal/service/auth"
	pasetotoken "github.com/carelinkhq/carelink_backend/pkg/paseto"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	if ve, isFieldErr := validate.AsErrors(err); isFieldErr {
		return validationFailed(c, ve)
	}
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrUserNotFound):
		return unauthorized(c)
	default:
		return internalError(c)
	}
}

func presentTokens(t *auth.AuthTokens) fiber.Map {
	return fiber.Map{
		"access":     t.AccessToken,
		"refresh":    t.RefreshToken,
		"expires_in": t.ExpiresIn,
		"user":       t.User,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Password2 string `json:"password2"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Register(c.Context(), auth.RegisterRequest{
		Email:     body.Email,
		Password:  body.Password,
		Password2: body.Password2,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return created(c, u)
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, presentTokens(tokens))
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		Refresh string `json:"refresh"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Refresh == "" {
		return badRequest(c, "refresh token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.Refresh)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, presentTokens(tokens))
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, hasClaims := pasetotoken.ClaimsFromFiber(c)
	if !hasClaims {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}

	return noContent(c)
}
