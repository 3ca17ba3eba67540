// Package analysis turns persisted sessions into region tallies and runs the
// severity-proportionality test over them.
package analysis

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/shortscope/shortscope/pkg/domain"
)

//go:generate moq -out mocks/loader.go -pkg mocks -skip-ensure -fmt goimports . SessionLoader

// SessionLoader reads persisted sessions for a scope across all profiles
type SessionLoader interface {
	LoadAll(ctx context.Context, scope domain.Scope) ([]domain.Session, error)
}

// Tally is the aggregated view of every session in a scope. Total is the
// classification denominator; items labeled with no region still count
// toward it, items carrying no classifiable signal only do when the
// count-unlabeled policy says so.
type Tally struct {
	ByProfile map[string]map[string]int // profile -> region -> count
	Regions   map[string]int            // region -> count across profiles
	Total     int                       // denominator items
	NoRegion  int                       // classified, no region matched
	Skipped   int                       // no title and no transcript, policy-excluded
	Sessions  int
}

// Aggregate tallies region labels for every session in the scope. Sessions
// that failed to load were already degraded to empty by the store, so a
// single corrupt session never aborts the whole load. Output is exactly
// reproducible for fixed input.
func Aggregate(ctx context.Context, loader SessionLoader, scope domain.Scope, countUnlabeled bool) (*Tally, error) {
	sessions, err := loader.LoadAll(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("load sessions for scope %q: %w", scope, err)
	}

	tally := &Tally{
		ByProfile: make(map[string]map[string]int),
		Regions:   make(map[string]int),
		Sessions:  len(sessions),
	}
	for _, sess := range sessions {
		for i := range sess.Records {
			rec := &sess.Records[i]

			noSignal := rec.Title == "" && rec.Transcript == ""
			if noSignal && !countUnlabeled {
				tally.Skipped++
				continue
			}
			tally.Total++

			region, ok := rec.RegionLabel()
			if !ok || region == "" {
				tally.NoRegion++
				continue
			}
			tally.Regions[region]++
			if tally.ByProfile[sess.Profile] == nil {
				tally.ByProfile[sess.Profile] = make(map[string]int)
			}
			tally.ByProfile[sess.Profile][region]++
		}
	}

	lgr.Printf("[INFO] aggregated %d sessions for scope %q: %d items, %d region-labeled, %d unmatched, %d skipped",
		tally.Sessions, scope, tally.Total, tally.Total-tally.NoRegion, tally.NoRegion, tally.Skipped)
	return tally, nil
}
