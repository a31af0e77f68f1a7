package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papeleria-gasparin/pos-api/internal/application/service"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/dto/request"
	"github.com/papeleria-gasparin/pos-api/internal/presentation/http/dto/response"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
	posService  *service.PosService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, posService *service.PosService) *AuthHandler {
	return &AuthHandler{authService: authService, posService: posService}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed", tokens)
}

// Logout handles POST /auth/logout. The operator's in-memory POS session is
// dropped; persisted state survives for the next login.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.posService.ForgetUser(GetStateKey(c))
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Profile handles GET /auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", user)
}

// ChangePassword handles POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), *userID, req.CurrentPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed", nil)
}

// GoogleLogin handles GET /auth/google. Redirects to the Google consent
// screen.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	url, state, err := h.authService.GoogleAuthURL()
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles GET /auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	expectedState, err := c.Cookie("oauth_state")
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	code := c.Query("code")
	if code == "" {
		response.Error(c, apperror.NewBadRequestError("Missing authorization code"))
		return
	}

	user, tokens, err := h.authService.GoogleCallback(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}
