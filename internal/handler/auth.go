package handler

import (
	"errors"
	"net/http"

	"shopchat/internal/model"
	"shopchat/internal/repository"
	"shopchat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles account-related HTTP requests
type AuthHandler struct {
	auth *service.AuthService
	log  zerolog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Error(msgCredentialsRequired))
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), req)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.Error(msgCredentialsRequired))
	case errors.Is(err, service.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, model.Error("Password must be at most 72 bytes."))
	case errors.Is(err, repository.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, model.Error("Username already exists."))
	case err != nil:
		h.log.Error().Err(err).Msg("register failed")
		c.JSON(http.StatusInternalServerError, model.Error(msgInternalError))
	default:
		c.JSON(http.StatusCreated, model.Success("User registered successfully.", resp))
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Error(msgCredentialsRequired))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.Error(msgCredentialsRequired))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, model.Error("Invalid username or password."))
	case err != nil:
		h.log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, model.Error(msgInternalError))
	default:
		c.JSON(http.StatusOK, model.Success("Login successful.", resp))
	}
}
