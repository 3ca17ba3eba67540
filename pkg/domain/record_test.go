package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain shorts url", "https://www.youtube.com/shorts/LRBvm_hQKqE", "LRBvm_hQKqE"},
		{"with query", "https://www.youtube.com/shorts/abc123?feature=share", "abc123"},
		{"with fragment", "https://www.youtube.com/shorts/abc123#t=5", "abc123"},
		{"no shorts path", "abc123", "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VideoIDFromURL(tt.url))
		})
	}
}

func TestItemRecord_Labels(t *testing.T) {
	now := time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)

	t.Run("training record", func(t *testing.T) {
		rec := NewTrainingRecord("https://www.youtube.com/shorts/v1", now, true)
		assert.True(t, rec.IsTraining())
		assert.True(t, rec.Related())
		_, ok := rec.RegionLabel()
		assert.False(t, ok, "training records carry no region label")
		require.NoError(t, rec.Validate())
	})

	t.Run("measurement record with region", func(t *testing.T) {
		rec := NewMeasurementRecord("https://www.youtube.com/shorts/v2", now, "Myanmar")
		assert.False(t, rec.IsTraining())
		region, ok := rec.RegionLabel()
		assert.True(t, ok)
		assert.Equal(t, "Myanmar", region)
		require.NoError(t, rec.Validate())
	})

	t.Run("measurement record with none", func(t *testing.T) {
		rec := NewMeasurementRecord("https://www.youtube.com/shorts/v3", now, "")
		_, ok := rec.RegionLabel()
		assert.False(t, ok)
		require.NoError(t, rec.Validate())
	})

	t.Run("both labels rejected", func(t *testing.T) {
		rec := NewTrainingRecord("https://www.youtube.com/shorts/v4", now, false)
		region := "Ukraine"
		rec.RelatedRegion = &region
		assert.Error(t, rec.Validate())
	})

	t.Run("no label rejected", func(t *testing.T) {
		rec := ItemRecord{URL: "https://www.youtube.com/shorts/v5", VideoID: "v5"}
		assert.Error(t, rec.Validate())
	})
}

func TestItemRecord_JSONShape(t *testing.T) {
	now := time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)

	t.Run("training", func(t *testing.T) {
		rec := NewTrainingRecord("https://www.youtube.com/shorts/v1", now, true)
		data, err := json.Marshal(rec)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"is_conflict_related":true`)
		assert.NotContains(t, string(data), "related_country")
	})

	t.Run("measurement keeps explicit none", func(t *testing.T) {
		rec := NewMeasurementRecord("https://www.youtube.com/shorts/v2", now, "")
		data, err := json.Marshal(rec)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"related_country":""`)
		assert.NotContains(t, string(data), "is_conflict_related")
	})

	t.Run("absent optional fields omitted", func(t *testing.T) {
		rec := NewMeasurementRecord("https://www.youtube.com/shorts/v3", now, "Ukraine")
		data, err := json.Marshal(rec)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "title")
		assert.NotContains(t, string(data), "transcript")
		assert.NotContains(t, string(data), "duration_seconds")
	})
}

func TestSession_Complete(t *testing.T) {
	sess := &Session{Profile: "p", Scope: ScopeHome, ID: "s"}
	assert.False(t, sess.Complete(1))

	now := time.Now()
	sess.Records = append(sess.Records, NewMeasurementRecord("a", now, ""))
	assert.True(t, sess.Complete(1))
	assert.False(t, sess.Complete(2))
}

func TestSession_RegionCounts(t *testing.T) {
	now := time.Now()
	sess := &Session{Profile: "p", Scope: ScopeHome, ID: "s", Records: []ItemRecord{
		NewMeasurementRecord("a", now, "Palestine"),
		NewMeasurementRecord("b", now, "Palestine"),
		NewMeasurementRecord("c", now, "Ukraine"),
		NewMeasurementRecord("d", now, ""),
	}}

	counts := sess.RegionCounts()
	assert.Equal(t, 2, counts["Palestine"])
	assert.Equal(t, 1, counts["Ukraine"])
	assert.Equal(t, 1, counts[""], "unlabeled records tracked under the empty key")
}
