package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/errors"
	authDTO "github.com/csiedev/meeting-records/internal/adapter/dto/auth"
	"github.com/csiedev/meeting-records/internal/adapter/presenter"
	"github.com/csiedev/meeting-records/internal/infrastructure/http/middleware"
	"github.com/csiedev/meeting-records/internal/usecase/auth"
)

// Auth handles authentication endpoints
type Auth struct {
	authService *auth.AuthService
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.AuthService, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates with email and password
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &authDTO.LoginResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    result.ExpiresIn,
		Person:       presenter.ToPersonResponse(result.Person),
	})
}

// Refresh exchanges a refresh token for a new access token
func (h *Auth) Refresh(c echo.Context) error {
	var req authDTO.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &authDTO.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
		Person:      presenter.ToPersonResponse(result.Person),
	})
}

// ChangePassword replaces the caller's password
func (h *Auth) ChangePassword(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req authDTO.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, nil)
}

// RecoverPassword resets the password and mails out the new one
func (h *Auth) RecoverPassword(c echo.Context) error {
	var req authDTO.RecoverPasswordRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.authService.RecoverPassword(c.Request().Context(), req.Email); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, nil)
}
