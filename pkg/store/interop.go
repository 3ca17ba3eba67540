package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/shortscope/shortscope/pkg/domain"
)

// ExportJSON writes every session out as a standalone JSON array file named
// {profile}_{scope}_{session_id}.json, the layout the original capture tool
// produced. Returns the number of files written.
func (s *Store) ExportJSON(ctx context.Context, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}

	profiles, err := s.Profiles(ctx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, profile := range profiles {
		scopes, err := s.Scopes(ctx, profile)
		if err != nil {
			return written, err
		}
		for _, scope := range scopes {
			sessions, err := s.LoadProfile(ctx, profile, scope)
			if err != nil {
				return written, err
			}
			for i := range sessions {
				sess := &sessions[i]
				data, err := json.MarshalIndent(sess.Records, "", "  ")
				if err != nil {
					return written, fmt.Errorf("marshal session %s/%s/%s: %w", profile, scope, sess.ID, err)
				}
				name := fmt.Sprintf("%s_%s_%s.json", profile, scope, sess.ID)
				if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
					return written, fmt.Errorf("write %s: %w", name, err)
				}
				written++
			}
		}
	}
	return written, nil
}

// ImportJSON loads legacy session files from dir into the store. File names
// must follow {profile}_{scope}_{session_id}.json with scope one of the
// given values; other files and files with unparseable JSON are skipped with
// a warning. Returns the number of sessions imported.
func (s *Store) ImportJSON(ctx context.Context, dir string, scopes []domain.Scope) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read import dir: %w", err)
	}

	imported := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		profile, scope, sessionID, ok := parseSessionFileName(entry.Name(), scopes)
		if !ok {
			lgr.Printf("[WARN] skipping %s: name does not match any known scope", entry.Name())
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name())) //nolint:gosec // listed dir entry
		if err != nil {
			lgr.Printf("[WARN] skipping %s: %v", entry.Name(), err)
			continue
		}

		var records []domain.ItemRecord
		if err := json.Unmarshal(data, &records); err != nil {
			lgr.Printf("[WARN] skipping %s: invalid json: %v", entry.Name(), err)
			continue
		}

		sess := &domain.Session{Profile: profile, Scope: scope, ID: sessionID, Records: records}
		if err := s.Save(ctx, sess); err != nil {
			return imported, fmt.Errorf("import %s: %w", entry.Name(), err)
		}
		imported++
	}
	return imported, nil
}

// parseSessionFileName splits {profile}_{scope}_{session_id}.json on the
// scope token. Profiles may contain underscores, so the split anchors on a
// known scope rather than on position.
func parseSessionFileName(name string, scopes []domain.Scope) (profile string, scope domain.Scope, sessionID string, ok bool) {
	stem := strings.TrimSuffix(name, ".json")
	for _, sc := range scopes {
		marker := "_" + string(sc) + "_"
		idx := strings.Index(stem, marker)
		if idx <= 0 || idx+len(marker) >= len(stem) {
			continue
		}
		return stem[:idx], sc, stem[idx+len(marker):], true
	}
	return "", "", "", false
}
