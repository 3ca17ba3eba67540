package analysis

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortscope/shortscope/pkg/analysis/mocks"
	"github.com/shortscope/shortscope/pkg/domain"
)

func measurementRecord(region, title string) domain.ItemRecord {
	rec := domain.NewMeasurementRecord("https://www.youtube.com/shorts/x", time.Now(), region)
	rec.Title = title
	return rec
}

func testSessions() []domain.Session {
	return []domain.Session{
		{Profile: "viewer_a", Scope: domain.ScopeHome, ID: "s1", Records: []domain.ItemRecord{
			measurementRecord("ukraine", "front line footage"),
			measurementRecord("ukraine", "drone strike"),
			measurementRecord("", "cat video"),
			measurementRecord("", ""), // no classifiable signal
		}},
		{Profile: "viewer_b", Scope: domain.ScopeHome, ID: "s2", Records: []domain.ItemRecord{
			measurementRecord("myanmar", "junta offensive"),
			measurementRecord("ukraine", "shelling report"),
		}},
		{Profile: "viewer_c", Scope: domain.ScopeHome, ID: "s3"}, // degraded corrupt session
	}
}

func TestAggregate(t *testing.T) {
	loader := &mocks.SessionLoaderMock{
		LoadAllFunc: func(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
			return testSessions(), nil
		},
	}

	t.Run("default policy excludes no-signal items", func(t *testing.T) {
		tally, err := Aggregate(context.Background(), loader, domain.ScopeHome, false)
		require.NoError(t, err)

		assert.Equal(t, 3, tally.Sessions)
		assert.Equal(t, 5, tally.Total)
		assert.Equal(t, 1, tally.Skipped)
		assert.Equal(t, 1, tally.NoRegion)
		assert.Equal(t, map[string]int{"ukraine": 3, "myanmar": 1}, tally.Regions)
		assert.Equal(t, map[string]int{"ukraine": 2}, tally.ByProfile["viewer_a"])
		assert.Equal(t, map[string]int{"ukraine": 1, "myanmar": 1}, tally.ByProfile["viewer_b"])
		assert.NotContains(t, tally.ByProfile, "viewer_c", "empty session contributes nothing")
	})

	t.Run("count-unlabeled policy includes them in the denominator", func(t *testing.T) {
		tally, err := Aggregate(context.Background(), loader, domain.ScopeHome, true)
		require.NoError(t, err)

		assert.Equal(t, 6, tally.Total)
		assert.Equal(t, 0, tally.Skipped)
		assert.Equal(t, 2, tally.NoRegion)
		assert.Equal(t, map[string]int{"ukraine": 3, "myanmar": 1}, tally.Regions, "region counts unchanged by policy")
	})

	t.Run("deterministic for fixed input", func(t *testing.T) {
		first, err := Aggregate(context.Background(), loader, domain.ScopeHome, false)
		require.NoError(t, err)
		second, err := Aggregate(context.Background(), loader, domain.ScopeHome, false)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("loader failure surfaces", func(t *testing.T) {
		broken := &mocks.SessionLoaderMock{
			LoadAllFunc: func(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
				return nil, errors.New("db gone")
			},
		}
		_, err := Aggregate(context.Background(), broken, domain.ScopeHome, false)
		require.Error(t, err)
	})
}

func TestWriteReport(t *testing.T) {
	loader := &mocks.SessionLoaderMock{
		LoadAllFunc: func(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
			return testSessions(), nil
		},
	}
	tally, err := Aggregate(context.Background(), loader, domain.ScopeHome, false)
	require.NoError(t, err)

	res, err := Evaluate(map[string]int{"ukraine": 120, "myanmar": 20}, map[string]float64{"ukraine": 1, "myanmar": 1}, 0.05)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, tally, res)
	out := buf.String()
	assert.Contains(t, out, "reject H0")
	assert.Contains(t, out, "ukraine")
	assert.Contains(t, out, "over-represented")
	assert.Contains(t, out, "under-represented")
	assert.Contains(t, out, "chi-square")
}

func TestWriteObserved(t *testing.T) {
	loader := &mocks.SessionLoaderMock{
		LoadAllFunc: func(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
			return testSessions(), nil
		},
	}
	tally, err := Aggregate(context.Background(), loader, domain.ScopeHome, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteObserved(&buf, tally)
	assert.Contains(t, buf.String(), "viewer_a")
	assert.Contains(t, buf.String(), "ukraine")
}
