package summary

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-admin/internal/panel/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCount struct {
	n     int
	err   error
	calls atomic.Int32
}

func (f *fixedCount) Count(context.Context) (int, error) {
	f.calls.Add(1)
	return f.n, f.err
}

type fixedAnalytics struct {
	a   Analytics
	err error
}

func (f fixedAnalytics) Analytics(context.Context) (Analytics, error) { return f.a, f.err }

func TestComputeCounts(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	v := New(Sources{
		Skills:       &fixedCount{n: 12},
		Technologies: &fixedCount{n: 7},
		Products:     &fixedCount{n: 3},
		Experience:   &fixedCount{n: 4},
	})
	v.now = func() time.Time { return now }

	c, err := v.ComputeCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, c.Skills)
	assert.Equal(t, 7, c.Technologies)
	assert.Equal(t, 3, c.Products)
	assert.Equal(t, 4, c.Experience)
	assert.Empty(t, c.Failed)
	assert.Equal(t, now, c.RefreshedAt)
}

func TestComputeCounts_FailuresAreIndependent(t *testing.T) {
	v := New(Sources{
		Skills:       &fixedCount{n: 12},
		Technologies: &fixedCount{n: 99, err: errors.New("down")},
		Products:     &fixedCount{n: 3},
		Experience:   &fixedCount{err: errors.New("down")},
	})

	c, err := v.ComputeCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, c.Skills)
	assert.Zero(t, c.Technologies)
	assert.Equal(t, 3, c.Products)
	assert.Zero(t, c.Experience)
	assert.Equal(t, []string{"technologies", "experience"}, c.Failed)
}

func TestLoadAll_AnalyticsOptional(t *testing.T) {
	counters := Sources{
		Skills:       &fixedCount{n: 1},
		Technologies: &fixedCount{n: 1},
		Products:     &fixedCount{n: 1},
		Experience:   &fixedCount{n: 1},
	}

	counters.Analytics = fixedAnalytics{err: errors.New("down")}
	v := New(counters)
	require.NoError(t, v.LoadAll(context.Background()))
	assert.Nil(t, v.Dashboard().Analytics)
	assert.Equal(t, 1, v.Dashboard().Counts.Skills)

	counters.Analytics = fixedAnalytics{a: Analytics{ContactForms: Metric{Total: 5}}}
	v = New(counters)
	require.NoError(t, v.LoadAll(context.Background()))
	require.NotNil(t, v.Dashboard().Analytics)
	assert.EqualValues(t, 5, v.Dashboard().Analytics.ContactForms.Total)
}

func TestComputeCounts_RejectedSessionIsReturned(t *testing.T) {
	rejected := &recordstore.Failure{Verb: "fetch", Resource: "products", Status: http.StatusUnauthorized}
	v := New(Sources{
		Skills:       &fixedCount{n: 2},
		Technologies: &fixedCount{err: errors.New("down")},
		Products:     &fixedCount{err: rejected},
		Experience:   &fixedCount{n: 1},
	})

	c, err := v.ComputeCounts(context.Background())
	require.Error(t, err)
	var f *recordstore.Failure
	require.ErrorAs(t, err, &f)
	assert.True(t, f.Unauthorized())
	assert.Equal(t, 2, c.Skills)
	assert.Equal(t, []string{"technologies", "products"}, c.Failed)
}

func TestLoadAll_RejectedSession(t *testing.T) {
	rejected := &recordstore.Failure{Verb: "fetch", Resource: "analytics", Status: http.StatusUnauthorized}
	ok := Sources{
		Skills:       &fixedCount{n: 1},
		Technologies: &fixedCount{n: 1},
		Products:     &fixedCount{n: 1},
		Experience:   &fixedCount{n: 1},
	}

	ok.Analytics = fixedAnalytics{err: rejected}
	v := New(ok)
	assert.ErrorIs(t, v.LoadAll(context.Background()), rejected)
	assert.Nil(t, v.Dashboard().Analytics)

	denied := &fixedCount{err: &recordstore.Failure{Verb: "fetch", Resource: "skills", Status: http.StatusUnauthorized}}
	analytics := &countingAnalytics{}
	v = New(Sources{Skills: denied, Technologies: denied, Products: denied, Experience: denied, Analytics: analytics})
	require.Error(t, v.LoadAll(context.Background()))
	assert.Zero(t, analytics.calls.Load())
}

type countingAnalytics struct{ calls atomic.Int32 }

func (c *countingAnalytics) Analytics(context.Context) (Analytics, error) {
	c.calls.Add(1)
	return Analytics{}, nil
}
