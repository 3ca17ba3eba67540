package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortscope/shortscope/pkg/domain"
)

func TestStore_ExportImportRoundTrip(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	training := &domain.Session{Profile: "profile_1", Scope: "Palestine", ID: "2025-11-01_10-00-00"}
	require.NoError(t, st.Append(ctx, training, trainingRecord("https://www.youtube.com/shorts/t1", true)))
	require.NoError(t, st.Append(ctx, training, trainingRecord("https://www.youtube.com/shorts/t2", false)))

	home := &domain.Session{Profile: "profile_1", Scope: domain.ScopeHome, ID: "2025-11-02_10-00-00"}
	require.NoError(t, st.Append(ctx, home, measurementRecord("https://www.youtube.com/shorts/h1", "Palestine")))

	written, err := st.ExportJSON(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	assert.FileExists(t, filepath.Join(dir, "profile_1_Palestine_2025-11-01_10-00-00.json"))
	assert.FileExists(t, filepath.Join(dir, "profile_1_home_2025-11-02_10-00-00.json"))

	// import into a fresh store
	st2, _ := setupTestStore(t)
	scopes := []domain.Scope{"Palestine", "Myanmar", domain.ScopeHome}
	imported, err := st2.ImportJSON(ctx, dir, scopes)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	got, err := st2.GetSession(ctx, "profile_1", "Palestine", "2025-11-01_10-00-00")
	require.NoError(t, err)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "t1", got.Records[0].VideoID)
	assert.True(t, got.Records[0].Related())

	gotHome, err := st2.GetSession(ctx, "profile_1", domain.ScopeHome, "2025-11-02_10-00-00")
	require.NoError(t, err)
	require.Len(t, gotHome.Records, 1)
	region, ok := gotHome.Records[0].RegionLabel()
	assert.True(t, ok)
	assert.Equal(t, "Palestine", region)
}

func TestStore_ImportSkipsInvalidFiles(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile_1_home_s1.json"),
		[]byte(`[{"url":"https://www.youtube.com/shorts/ok","video_id":"ok","extracted_at":"2025-11-03T14:00:00Z","related_country":""}]`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile_1_home_s2.json"),
		[]byte(`[{"url": "trunc`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a session"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.json"), []byte(`[]`), 0o600))

	imported, err := st.ImportJSON(ctx, dir, []domain.Scope{domain.ScopeHome})
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	sessions, err := st.LoadAll(ctx, domain.ScopeHome)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "ok", sessions[0].Records[0].VideoID)
}

func TestParseSessionFileName(t *testing.T) {
	scopes := []domain.Scope{"Palestine", domain.ScopeHome}

	tests := []struct {
		name      string
		file      string
		profile   string
		scope     domain.Scope
		sessionID string
		ok        bool
	}{
		{"home with underscore profile", "profile_1_home_2025-11-01_10-00-00.json", "profile_1", domain.ScopeHome, "2025-11-01_10-00-00", true},
		{"training scope", "neutral_2_Palestine_s9.json", "neutral_2", "Palestine", "s9", true},
		{"unknown scope", "profile_1_Atlantis_s1.json", "", "", "", false},
		{"scope token missing", "justafile.json", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, scope, sessionID, ok := parseSessionFileName(tt.file, scopes)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.profile, profile)
				assert.Equal(t, tt.scope, scope)
				assert.Equal(t, tt.sessionID, sessionID)
			}
		})
	}
}
