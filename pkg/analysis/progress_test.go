package analysis

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortscope/shortscope/pkg/domain"
)

type fakeProgressLoader struct {
	sessions map[string]map[domain.Scope][]domain.Session
}

func (f *fakeProgressLoader) Profiles(ctx context.Context) ([]string, error) {
	var out []string
	for p := range f.sessions {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProgressLoader) Scopes(ctx context.Context, profile string) ([]domain.Scope, error) {
	var out []domain.Scope
	for s := range f.sessions[profile] {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeProgressLoader) LoadProfile(ctx context.Context, profile string, scope domain.Scope) ([]domain.Session, error) {
	return f.sessions[profile][scope], nil
}

func TestBuildProgress(t *testing.T) {
	related := domain.NewTrainingRecord("https://www.youtube.com/shorts/a", time.Now(), true)
	related.DurationSeconds = 30
	unrelated := domain.NewTrainingRecord("https://www.youtube.com/shorts/b", time.Now(), false)
	unrelated.DurationSeconds = 10
	labeled := domain.NewMeasurementRecord("https://www.youtube.com/shorts/c", time.Now(), "ukraine")

	loader := &fakeProgressLoader{sessions: map[string]map[domain.Scope][]domain.Session{
		"viewer_a": {
			"ukraine": {
				{Profile: "viewer_a", Scope: "ukraine", ID: "s1", Records: []domain.ItemRecord{related, unrelated}},
				{Profile: "viewer_a", Scope: "ukraine", ID: "s2", Records: []domain.ItemRecord{related}},
			},
			domain.ScopeHome: {
				{Profile: "viewer_a", Scope: domain.ScopeHome, ID: "s3", Records: []domain.ItemRecord{labeled, labeled}},
			},
		},
	}}

	targetFor := func(scope domain.Scope) int {
		if scope == domain.ScopeHome {
			return 2
		}
		return 2
	}

	rows, err := BuildProgress(context.Background(), loader, targetFor)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byScope := make(map[domain.Scope]ProgressRow)
	for _, row := range rows {
		byScope[row.Scope] = row
	}

	training := byScope["ukraine"]
	assert.Equal(t, 1, training.Complete)
	assert.Equal(t, 1, training.Incomplete)
	assert.Equal(t, 3, training.Items)
	assert.Equal(t, 2, training.Labeled, "related training items")
	assert.InDelta(t, (30.0+10.0+30.0)/3.0, training.AvgDuration, 1e-9)

	home := byScope[domain.ScopeHome]
	assert.Equal(t, 1, home.Complete)
	assert.Equal(t, 0, home.Incomplete)
	assert.Equal(t, 2, home.Labeled, "region-labeled home items")
	assert.Zero(t, home.AvgDuration)
}

func TestWriteProgress(t *testing.T) {
	rows := []ProgressRow{
		{Profile: "viewer_a", Scope: "ukraine", Complete: 3, Incomplete: 1, Items: 170, Labeled: 51, AvgDuration: 24.5},
	}
	var buf bytes.Buffer
	WriteProgress(&buf, rows)
	assert.Contains(t, buf.String(), "viewer_a")
	assert.Contains(t, buf.String(), "ukraine")
	assert.Contains(t, buf.String(), "30%")
}
