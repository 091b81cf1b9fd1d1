package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gestiontickets/internal/application/auth/usecases"
	sharedConfig "gestiontickets/internal/shared/config"
	"gestiontickets/internal/shared/logger"
	"gestiontickets/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	MemberID  *uint  `json:"member_id,omitempty"`
	ExpiresIn int64  `json:"expires_in"`
}

type AuthHandler struct {
	loginUC    usecases.LoginExecutor
	refreshUC  usecases.RefreshTokenExecutor
	authConfig sharedConfig.AuthConfig
	logger     logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshTokenExecutor,
	authConfig sharedConfig.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		loginUC:    loginUC,
		refreshUC:  refreshUC,
		authConfig: authConfig,
		logger:     logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", SessionResponse{
		UserID:    result.UserID,
		Email:     result.Email,
		Role:      result.Role.String(),
		MemberID:  result.MemberID,
		ExpiresIn: result.ExpiresIn,
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: refreshToken,
	})
	if err != nil {
		utils.ClearAuthCookies(c, h.authConfig.Cookie)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "Session refreshed", gin.H{
		"expires_in": result.ExpiresIn,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.authConfig.Cookie)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	accessMaxAge := h.authConfig.JWT.AccessExpMinutes * 60
	refreshMaxAge := h.authConfig.JWT.RefreshExpDays * 24 * 3600
	utils.SetAuthCookies(c, h.authConfig.Cookie, accessToken, refreshToken, accessMaxAge, refreshMaxAge)
}
