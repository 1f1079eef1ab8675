package resources

import (
	"errors"
	"net/http"

	"portfolio-admin/internal/domain/record"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultOrder is the list order of every sortable content table.
const DefaultOrder = "sort_order ASC, created_at ASC"

// Entity is satisfied by a pointer to any record embedding record.Base.
type Entity[E any] interface {
	*E
	Identity() *record.Base
}

// Handler serves list, create, update and delete for one table.
type Handler[E any, P Entity[E]] struct {
	db     *gorm.DB
	log    *zap.Logger
	label  string
	plural string
	order  string
}

type Option func(*options)

type options struct {
	order string
}

// WithOrder replaces DefaultOrder for the list endpoint.
func WithOrder(order string) Option {
	return func(o *options) { o.order = order }
}

// New builds a handler. label names one record ("skill") and plural the
// collection ("skills"); both appear in error messages.
func New[E any, P Entity[E]](db *gorm.DB, log *zap.Logger, label, plural string, opts ...Option) *Handler[E, P] {
	o := options{order: DefaultOrder}
	for _, opt := range opts {
		opt(&o)
	}
	return &Handler[E, P]{db: db, log: log, label: label, plural: plural, order: o.order}
}

// Register mounts the four verbs on path.
func (h *Handler[E, P]) Register(r gin.IRoutes, path string) {
	r.GET(path, h.List)
	r.POST(path, h.Create)
	r.PUT(path, h.Update)
	r.DELETE(path, h.Delete)
}

// ------------------------------
// GET /api/admin/{resource}
// ------------------------------
func (h *Handler[E, P]) List(c *gin.Context) {
	items := make([]E, 0)
	if err := h.db.WithContext(c.Request.Context()).Order(h.order).Find(&items).Error; err != nil {
		h.log.Error("list failed", zap.String("resource", h.plural), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + h.plural})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ------------------------------
// POST /api/admin/{resource}
// ------------------------------
func (h *Handler[E, P]) Create(c *gin.Context) {
	item := P(new(E))
	if err := c.ShouldBindJSON(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.Identity().Reset()

	if err := h.db.WithContext(c.Request.Context()).Create(item).Error; err != nil {
		h.log.Error("create failed", zap.String("resource", h.plural), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + h.label})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ------------------------------
// PUT /api/admin/{resource}  (body carries id)
// ------------------------------
func (h *Handler[E, P]) Update(c *gin.Context) {
	item := P(new(E))
	if err := c.ShouldBindJSON(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := item.Identity().ID
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	db := h.db.WithContext(c.Request.Context())
	existing := P(new(E))
	if err := db.First(existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.label + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + h.label})
		return
	}
	item.Identity().CreatedAt = existing.Identity().CreatedAt

	if err := db.Save(item).Error; err != nil {
		h.log.Error("update failed", zap.String("resource", h.plural), zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + h.label})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ------------------------------
// DELETE /api/admin/{resource}?id=
// ------------------------------
func (h *Handler[E, P]) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(P(new(E)), "id = ?", id)
	if res.Error != nil {
		h.log.Error("delete failed", zap.String("resource", h.plural), zap.String("id", id), zap.Error(res.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete " + h.label})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": h.label + " not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
