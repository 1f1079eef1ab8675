package profile

import (
	"errors"
	"net/http"

	"portfolio-admin/internal/domain/portfolio"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

// ------------------------------
// GET /api/admin/profile
// ------------------------------
// Replies with an empty object until a profile has been saved.
func (h *Handler) Get(c *gin.Context) {
	var p portfolio.Profile
	err := h.db.WithContext(c.Request.Context()).Order("created_at ASC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		h.log.Error("load profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ------------------------------
// PUT /api/admin/profile  (upsert)
// ------------------------------
func (h *Handler) Put(c *gin.Context) {
	var in portfolio.Profile
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in.Reset()

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var current portfolio.Profile
		err := tx.Order("created_at ASC").First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&in).Error
		}
		if err != nil {
			return err
		}

		in.ID = current.ID
		in.CreatedAt = current.CreatedAt
		return tx.Save(&in).Error
	})
	if err != nil {
		h.log.Error("save profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, in)
}
