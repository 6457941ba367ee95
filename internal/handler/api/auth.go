package api

import (
	"errors"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/cookie"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	staffReads   queries.StaffReadStore
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, staffReads queries.StaffReadStore, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		staffReads:   staffReads,
		cfg:          cfg,
	}
}

// @Summary Staff login
// @Description Authenticate a staff member and set token cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStaffNotFound),
			errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrStaffInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Account is deactivated",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.cfg.JWT.AccessDuration, h.cfg.JWT.RefreshDuration)

	c.JSON(http.StatusOK, resdto.ToLoginResponse(result))
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Refresh token required",
			})
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTokenValidation),
			errors.Is(err, commands.ErrStaffNotFound),
			errors.Is(err, commands.ErrStaffInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired refresh token",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		pair.AccessToken, pair.RefreshToken,
		h.cfg.JWT.AccessDuration, h.cfg.JWT.RefreshDuration)

	c.JSON(http.StatusOK, resdto.ToTokenResponse(pair))
}

// @Summary Logout
// @Description Clear token cookies
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current staff profile
// @Description Return the authenticated staff member
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.StaffView
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.staffReads.FindByID(c.Request.Context(), staffID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Staff not found",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
