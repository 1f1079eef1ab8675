package contact

import (
	"errors"
	"net/http"

	"portfolio-admin/internal/domain/contact"

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
// POST /api/contact  (public form)
// ------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required,max=200"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"max=300"`
		Message string `json:"message" binding:"required,max=5000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := contact.Submission{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&s).Error; err != nil {
		h.log.Error("store submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message received", "id": s.ID})
}

// ------------------------------
// GET /api/admin/contact-submissions
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	items := make([]contact.Submission, 0)
	err := h.db.WithContext(c.Request.Context()).
		Order("submitted_at DESC").
		Find(&items).Error
	if err != nil {
		h.log.Error("list submissions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ------------------------------
// PUT /api/admin/contact-submissions  {id, status}
// ------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var input struct {
		ID     string         `json:"id" binding:"required"`
		Status contact.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var s contact.Submission
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, "id = ?", input.ID).Error; err != nil {
			return err
		}
		if err := contact.Transition(s.Status, input.Status); err != nil {
			return err
		}
		s.Status = input.Status
		return tx.Model(&s).Update("status", s.Status).Error
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, s)
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
	case errors.Is(err, contact.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error("update submission failed", zap.String("id", input.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
	}
}

// ------------------------------
// DELETE /api/admin/contact-submissions?id=
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&contact.Submission{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submission"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
