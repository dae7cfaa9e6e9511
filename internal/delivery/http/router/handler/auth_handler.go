package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password"`
}

type verifyPasswordRequest struct {
	Password string `json:"password"`
}

// AuthHandler serves registration, login and step-up verification.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// VerifyPassword re-checks the caller's password before a destructive action.
// The session token is left untouched either way.
func (h *AuthHandler) VerifyPassword(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req verifyPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.VerifyPassword(c.Request().Context(), userID, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"verified": true}, "Password verified")
}

// Me returns the caller's public profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
