package sitesettings

import (
	"errors"
	"net/http"

	"portfolio-admin/internal/domain/settings"

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

func (h *Handler) Register(r gin.IRoutes, path string) {
	r.GET(path, h.List)
	r.POST(path, h.Create)
	r.PUT(path, h.Update)
	r.DELETE(path, h.Delete)
}

// ------------------------------
// GET /api/admin/site-settings
// ------------------------------
// Rows stored before value_type existed get their inferred type written
// back the first time they are listed.
func (h *Handler) List(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	items := make([]settings.Setting, 0)
	if err := db.Order("key ASC").Find(&items).Error; err != nil {
		h.log.Error("list settings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	for i := range items {
		if items[i].ValueType != "" {
			continue
		}
		items[i].ValueType = settings.InferValueType(items[i].Key)
		err := db.Model(&settings.Setting{}).
			Where("id = ?", items[i].ID).
			UpdateColumn("value_type", items[i].ValueType).Error
		if err != nil {
			h.log.Warn("backfill value type failed", zap.String("key", items[i].Key), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, items)
}

// ------------------------------
// POST /api/admin/site-settings
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in settings.Setting
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in.Reset()

	if err := in.Normalize(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var existing int64
	if err := db.Model(&settings.Setting{}).Where("key = ?", in.Key).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create setting"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Setting key already exists"})
		return
	}

	if err := db.Create(&in).Error; err != nil {
		h.log.Error("create setting failed", zap.String("key", in.Key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create setting"})
		return
	}
	c.JSON(http.StatusCreated, in)
}

type updateRequest struct {
	Key         string             `json:"key" binding:"required"`
	Value       string             `json:"value"`
	Description *string            `json:"description"`
	ValueType   settings.ValueType `json:"value_type"`
}

// ------------------------------
// PUT /api/admin/site-settings  (keyed by key)
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	var in updateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var s settings.Setting
	if err := db.Where("key = ?", in.Key).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
		return
	}

	s.Value = in.Value
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.ValueType != "" {
		s.ValueType = in.ValueType
	}
	if err := s.Normalize(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.Save(&s).Error; err != nil {
		h.log.Error("update setting failed", zap.String("key", s.Key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ------------------------------
// DELETE /api/admin/site-settings?id=
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&settings.Setting{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete setting"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
