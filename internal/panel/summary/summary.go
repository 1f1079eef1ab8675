// Package summary computes the dashboard: record counts per content type
// and the analytics overview.
package summary

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"portfolio-admin/internal/panel/recordstore"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Counter reports how many records a collection holds.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Counts are the dashboard tiles. A count that could not be fetched is 0
// and its name is listed in Failed.
type Counts struct {
	Skills       int
	Technologies int
	Products     int
	Experience   int
	Failed       []string
	// RefreshedAt is when the counts were computed.
	RefreshedAt time.Time
}

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

type Analytics struct {
	PageViews       Metric     `json:"pageViews"`
	ContactForms    Metric     `json:"contactForms"`
	ResumeDownloads Metric     `json:"resumeDownloads"`
	TopPages        []PageStat `json:"topPages"`
	RecentActivity  []Activity `json:"recentActivity"`
}

type AnalyticsSource interface {
	Analytics(ctx context.Context) (Analytics, error)
}

type remoteAnalytics struct {
	c *recordstore.Client
}

// RemoteAnalytics reads GET /api/admin/analytics.
func RemoteAnalytics(c *recordstore.Client) AnalyticsSource {
	return remoteAnalytics{c: c}
}

func (r remoteAnalytics) Analytics(ctx context.Context) (Analytics, error) {
	var a Analytics
	err := r.c.Send(ctx, "fetch", http.MethodGet, "analytics", nil, nil, &a)
	return a, err
}

// Dashboard is what the summary section shows.
type Dashboard struct {
	Counts    Counts
	Analytics *Analytics
}

type Sources struct {
	Skills       Counter
	Technologies Counter
	Products     Counter
	Experience   Counter
	Analytics    AnalyticsSource
}

type Option func(*View)

func WithLogger(l *zap.Logger) Option {
	return func(v *View) { v.log = l }
}

type View struct {
	src Sources
	log *zap.Logger
	now func() time.Time

	mu   sync.Mutex
	dash Dashboard
}

func New(src Sources, opts ...Option) *View {
	v := &View{src: src, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ComputeCounts queries the four collections concurrently. Each query
// fails on its own without affecting the others. The error is non-nil only
// when the server rejected the session; the counts are filled in regardless.
func (v *View) ComputeCounts(ctx context.Context) (Counts, error) {
	slots := []struct {
		name string
		src  Counter
		n    int
		err  error
	}{
		{name: "skills", src: v.src.Skills},
		{name: "technologies", src: v.src.Technologies},
		{name: "products", src: v.src.Products},
		{name: "experience", src: v.src.Experience},
	}

	var g errgroup.Group
	for i := range slots {
		s := &slots[i]
		g.Go(func() error {
			s.n, s.err = s.src.Count(ctx)
			return nil
		})
	}
	_ = g.Wait()

	c := Counts{}
	var denied error
	for _, s := range slots {
		if s.err != nil {
			if denied == nil && sessionRejected(s.err) {
				denied = s.err
			}
			v.log.Warn("count failed", zap.String("resource", s.name), zap.Error(s.err))
			c.Failed = append(c.Failed, s.name)
			s.n = 0
		}
		switch s.name {
		case "skills":
			c.Skills = s.n
		case "technologies":
			c.Technologies = s.n
		case "products":
			c.Products = s.n
		case "experience":
			c.Experience = s.n
		}
	}
	c.RefreshedAt = v.now()
	return c, denied
}

// LoadAll refreshes counts and analytics. Failures default to zero counts
// and nil Dashboard.Analytics; only a rejected session is returned.
func (v *View) LoadAll(ctx context.Context) error {
	counts, denied := v.ComputeCounts(ctx)

	var analytics *Analytics
	if v.src.Analytics != nil && denied == nil {
		a, err := v.src.Analytics.Analytics(ctx)
		switch {
		case err == nil:
			analytics = &a
		case sessionRejected(err):
			denied = err
		default:
			v.log.Warn("analytics failed", zap.Error(err))
		}
	}

	v.mu.Lock()
	v.dash = Dashboard{Counts: counts, Analytics: analytics}
	v.mu.Unlock()
	return denied
}

func sessionRejected(err error) bool {
	var f *recordstore.Failure
	return errors.As(err, &f) && f.Unauthorized()
}

func (v *View) Dashboard() Dashboard {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dash
}

func (v *View) Snapshot() any { return v.Dashboard() }
