package uploads

import (
	"errors"
	"net/http"

	"portfolio-admin/internal/domain/media"
	"portfolio-admin/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	store    *storage.Local
	maxBytes int64
	log      *zap.Logger
}

func NewHandler(db *gorm.DB, store *storage.Local, maxBytes int64, log *zap.Logger) *Handler {
	return &Handler{db: db, store: store, maxBytes: maxBytes, log: log}
}

// ------------------------------
// POST /api/admin/upload  multipart: file, bucket
// ------------------------------
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if fh.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	bucket := c.PostForm("bucket")
	if !storage.ValidBucket(bucket) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown bucket"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}
	defer f.Close()

	obj, err := h.store.Save(bucket, fh.Filename, f)
	if err != nil {
		h.log.Error("store upload failed", zap.String("bucket", bucket), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	img := media.Image{
		Bucket:       obj.Bucket,
		OriginalName: fh.Filename,
		Path:         obj.Path,
		URL:          obj.URL,
		ContentType:  fh.Header.Get("Content-Type"),
		SizeBytes:    obj.Size,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&img).Error; err != nil {
		h.log.Error("record upload failed", zap.String("path", obj.Path), zap.Error(err))
		if rerr := h.store.Remove(obj); rerr != nil {
			h.log.Warn("remove orphaned upload failed", zap.String("path", obj.Path), zap.Error(rerr))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": obj.URL})
}
