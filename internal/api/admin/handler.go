package admin

import (
	"context"
	"math"
	"net/http"
	"sort"
	"time"

	"portfolio-admin/internal/domain/contact"
	"portfolio-admin/internal/domain/media"
	"portfolio-admin/internal/domain/portfolio"
	"portfolio-admin/internal/domain/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Metric struct {
	Total     int64   `json:"total"`
	ThisMonth int64   `json:"thisMonth"`
	LastMonth int64   `json:"lastMonth"`
	Growth    float64 `json:"growth"`
}

type PageStat struct {
	Page       string  `json:"page"`
	Views      int64   `json:"views"`
	Percentage float64 `json:"percentage"`
}

type Activity struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Analytics is the fixed-shape dashboard summary. Page views and resume
// downloads are not collected, so those figures are sample values.
type Analytics struct {
	PageViews       Metric     `json:"pageViews"`
	ContactForms    Metric     `json:"contactForms"`
	ResumeDownloads Metric     `json:"resumeDownloads"`
	TopPages        []PageStat `json:"topPages"`
	RecentActivity  []Activity `json:"recentActivity"`
}

const maxActivity = 5

var (
	samplePageViews       = Metric{Total: 1250, ThisMonth: 450, LastMonth: 380, Growth: 18.4}
	sampleResumeDownloads = Metric{Total: 89, ThisMonth: 32, LastMonth: 28, Growth: 14.3}
	sampleTopPages        = []PageStat{
		{Page: "/", Views: 680, Percentage: 54.4},
		{Page: "/#about", Views: 245, Percentage: 19.6},
		{Page: "/#projects", Views: 180, Percentage: 14.4},
		{Page: "/#contact", Views: 145, Percentage: 11.6},
	}
)

type Handler struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log, now: time.Now}
}

// ------------------------------
// GET /api/admin/analytics
// ------------------------------
func (h *Handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	forms, err := h.contactMetric(ctx)
	if err != nil {
		h.log.Error("contact metric failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	c.JSON(http.StatusOK, Analytics{
		PageViews:       samplePageViews,
		ContactForms:    forms,
		ResumeDownloads: sampleResumeDownloads,
		TopPages:        sampleTopPages,
		RecentActivity:  h.recentActivity(ctx),
	})
}

func (h *Handler) contactMetric(ctx context.Context) (Metric, error) {
	thisStart, lastStart := monthBounds(h.now())
	db := h.db.WithContext(ctx).Model(&contact.Submission{})

	var m Metric
	if err := db.Session(&gorm.Session{}).Count(&m.Total).Error; err != nil {
		return Metric{}, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("submitted_at >= ?", thisStart).
		Count(&m.ThisMonth).Error; err != nil {
		return Metric{}, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("submitted_at >= ? AND submitted_at < ?", lastStart, thisStart).
		Count(&m.LastMonth).Error; err != nil {
		return Metric{}, err
	}
	m.Growth = growth(m.ThisMonth, m.LastMonth)
	return m, nil
}

// monthBounds returns the first instant of the current and previous month in UTC.
func monthBounds(now time.Time) (thisMonth, lastMonth time.Time) {
	now = now.UTC()
	thisMonth = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth = thisMonth.AddDate(0, -1, 0)
	return thisMonth, lastMonth
}

// growth is the month-over-month change in percent, rounded to one decimal.
// With nothing last month it is 0.
func growth(this, last int64) float64 {
	if last == 0 {
		return 0
	}
	g := float64(this-last) / float64(last) * 100
	return math.Round(g*10) / 10
}

var activitySources = []struct {
	model  interface{}
	action string
}{
	{&portfolio.Profile{}, "Profile updated"},
	{&portfolio.Skill{}, "Skill updated"},
	{&portfolio.Technology{}, "Technology updated"},
	{&portfolio.Product{}, "Product updated"},
	{&portfolio.Project{}, "Project updated"},
	{&portfolio.Experience{}, "Experience updated"},
	{&settings.Setting{}, "Site settings changed"},
	{&media.Image{}, "Image uploaded"},
	{&contact.Submission{}, "New contact message"},
}

// recentActivity lists the latest change per table, newest first. A table
// that cannot be read is skipped.
func (h *Handler) recentActivity(ctx context.Context) []Activity {
	out := make([]Activity, 0, len(activitySources))
	for _, src := range activitySources {
		var stamps []time.Time
		err := h.db.WithContext(ctx).Model(src.model).
			Order("updated_at DESC").
			Limit(1).
			Pluck("updated_at", &stamps).Error
		if err != nil {
			h.log.Warn("activity lookup failed", zap.String("action", src.action), zap.Error(err))
			continue
		}
		if len(stamps) == 0 {
			continue
		}
		out = append(out, Activity{Action: src.action, Timestamp: stamps[0]})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > maxActivity {
		out = out[:maxActivity]
	}
	return out
}
