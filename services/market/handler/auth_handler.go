package handler

import (
	"fmt"
	"net/http"

	"bid-market/internal/identity"
	model "bid-market/internal/models"
	"bid-market/services/market/helpers"
	"bid-market/utils"

	"github.com/gin-gonic/gin"
)

type IdentityProviderInterface interface {
	Register(username, password string) (model.User, error)
	Login(username, password string) (identity.Token, error)
}

type AuthHandler struct {
	provider IdentityProviderInterface
}

func NewAuthHandler(provider IdentityProviderInterface) *AuthHandler {
	return &AuthHandler{provider: provider}
}

// RegisterHandler handles POST /auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.provider.Register(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: registration failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.RegisterResponse{UserID: user.UserID, Username: user.Username}
	utils.JSONResponse(c, http.StatusCreated, resp, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

// TokenHandler handles POST /auth/token
func (h *AuthHandler) TokenHandler(c *gin.Context) {
	var req helpers.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TokenHandler", err)
		return
	}

	token, err := h.provider.Login(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("TokenHandler: login failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, token, "token issued successfully")
	helpers.LogSuccess("TokenHandler", "token issued successfully", map[string]any{
		"user_id":  token.UserID,
		"username": token.Username,
	})
}
