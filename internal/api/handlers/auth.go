package handlers

import (
	"net/http"

	"vacation-manager-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /auth/login
// @Summary Exchange a verified email for an API token
// @Description Issue a JWT for a registered employee. The email must already be verified by the upstream identity provider.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.LoginRequest true "Verified subject email"
// @Success 200 {object} auth.LoginResponse "Token issued"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unknown user email"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.authService.Login(req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
