package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register creates a customer account.
// @Summary		Register
// @Tags		Auth
// @Accept		json
// @Produce		json
// @Param		body	body	RegisterRequest	true	"payload"
// @Success		201	{object}	map[string]interface{}
// @Router		/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email is already registered")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "REGISTER_FAILED", "Failed to register")
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Login exchanges credentials for a token.
// @Summary		Login
// @Tags		Auth
// @Accept		json
// @Produce		json
// @Param		body	body	LoginRequest	true	"payload"
// @Success		200	{object}	map[string]interface{}
// @Router		/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetMe(c *gin.Context) {
	u, err := h.service.GetMe(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}
