package auth

import (
	"errors"
	"net/http"
	"time"

	"portfolio-admin/internal/app/http/middleware"
	authn "portfolio-admin/internal/auth"
	"portfolio-admin/internal/domain/users"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler serves the admin session endpoints.
type Handler struct {
	db     *gorm.DB
	tokens *authn.TokenManager
	log    *zap.Logger
}

func NewHandler(db *gorm.DB, tokens *authn.TokenManager, log *zap.Logger) *Handler {
	return &Handler{db: db, tokens: tokens, log: log}
}

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

type sessionResponse struct {
	Token     string    `json:"token,omitempty"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ------------------------------
// POST /api/admin/login
// ------------------------------
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var admin users.Admin
	if err := db.Where("username = ?", input.Username).First(&admin).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.Error("login lookup failed", zap.Error(err))
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !authn.CheckPassword(admin.PasswordHash, input.Password) {
		h.log.Warn("login rejected", zap.String("username", input.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, claims, err := h.tokens.Issue(admin.ID, admin.Username, admin.Role)
	if err != nil {
		h.log.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	now := time.Now().UTC()
	if err := db.Model(&admin).Update("last_login_at", &now).Error; err != nil {
		h.log.Warn("record last login failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, sessionResponse{
		Token:     token,
		Username:  admin.Username,
		Role:      admin.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}

// ------------------------------
// POST /api/admin/logout
// ------------------------------
func (h *Handler) Logout(c *gin.Context) {
	revoked := users.RevokedToken{
		TokenID:   c.GetString(middleware.CtxTokenID),
		AdminID:   c.GetString(middleware.CtxAdminID),
		ExpiresAt: c.GetTime(middleware.CtxTokenExpires),
	}

	err := h.db.WithContext(c.Request.Context()).
		Where(users.RevokedToken{TokenID: revoked.TokenID}).
		FirstOrCreate(&revoked).Error
	if err != nil {
		h.log.Error("revoke token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ------------------------------
// GET /api/admin/session
// ------------------------------
func (h *Handler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, sessionResponse{
		Username:  c.GetString(middleware.CtxUsername),
		Role:      c.GetString(middleware.CtxRole),
		ExpiresAt: c.GetTime(middleware.CtxTokenExpires),
	})
}

// ------------------------------
// POST /api/admin/change-password
// ------------------------------
func (h *Handler) ChangePassword(c *gin.Context) {
	var input struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if !isPasswordStrong(input.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be at least 8 characters with letters and numbers"})
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var admin users.Admin
	if err := db.First(&admin, "id = ?", c.GetString(middleware.CtxAdminID)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
		return
	}

	if !authn.CheckPassword(admin.PasswordHash, input.OldPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Old password is incorrect"})
		return
	}

	hash, err := authn.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := db.Model(&admin).Update("password_hash", hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
