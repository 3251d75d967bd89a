// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"swatbarber/services/auth"
	"swatbarber/utils"
)

// AuthHandler exposes login, logout and session inspection.
type AuthHandler struct {
	AuthSvc auth.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{AuthSvc: svc}
}

// Login authenticates a barber or the admin account.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.AuthSvc.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeveloperLogin authenticates the gallery management credential.
func (h *AuthHandler) DeveloperLogin(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.AuthSvc.DeveloperLogin(c.Request.Context(), input.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Session echoes the authenticated principal for the presented token.
func (h *AuthHandler) Session(c *gin.Context) {
	role, subject := callerIdentity(c)
	c.JSON(http.StatusOK, gin.H{"subject": subject, "role": role})
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		utils.JSONError(c, http.StatusBadRequest, "authorization token not provided", "")
		return
	}
	if err := h.AuthSvc.Logout(c.Request.Context(), token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to log out", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
	case errors.Is(err, auth.ErrDeveloperDisabled):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, auth.ErrTokenRevoked):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", err.Error())
	}
}
