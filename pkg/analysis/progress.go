package analysis

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shortscope/shortscope/pkg/domain"
)

// ProgressLoader reads per-profile session state for the progress report
type ProgressLoader interface {
	Profiles(ctx context.Context) ([]string, error)
	Scopes(ctx context.Context, profile string) ([]domain.Scope, error)
	LoadProfile(ctx context.Context, profile string, scope domain.Scope) ([]domain.Session, error)
}

// ProgressRow summarizes collection state for one (profile, scope) pair
type ProgressRow struct {
	Profile     string
	Scope       domain.Scope
	Complete    int
	Incomplete  int
	Items       int
	Labeled     int     // related items (training) or region-labeled items (home)
	AvgDuration float64 // mean caption-derived duration of items that have one
}

// BuildProgress walks everything the store knows and summarizes collection
// state per profile and scope. targetFor maps a scope to its per-session
// item target since training and measurement targets differ.
func BuildProgress(ctx context.Context, loader ProgressLoader, targetFor func(domain.Scope) int) ([]ProgressRow, error) {
	profiles, err := loader.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	var rows []ProgressRow
	for _, profile := range profiles {
		scopes, err := loader.Scopes(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("list scopes for %s: %w", profile, err)
		}
		for _, scope := range scopes {
			sessions, err := loader.LoadProfile(ctx, profile, scope)
			if err != nil {
				return nil, fmt.Errorf("load %s/%s: %w", profile, scope, err)
			}
			rows = append(rows, progressRow(profile, scope, sessions, targetFor(scope)))
		}
	}
	return rows, nil
}

func progressRow(profile string, scope domain.Scope, sessions []domain.Session, target int) ProgressRow {
	row := ProgressRow{Profile: profile, Scope: scope}
	var durationSum float64
	var durationN int
	for _, sess := range sessions {
		if sess.Complete(target) {
			row.Complete++
		} else {
			row.Incomplete++
		}
		row.Items += len(sess.Records)
		if scope == domain.ScopeHome {
			counts := sess.RegionCounts()
			delete(counts, "")
			for _, n := range counts {
				row.Labeled += n
			}
		} else {
			row.Labeled += sess.RelatedCount()
		}
		for i := range sess.Records {
			if d := sess.Records[i].DurationSeconds; d > 0 {
				durationSum += d
				durationN++
			}
		}
	}
	if durationN > 0 {
		row.AvgDuration = durationSum / float64(durationN)
	}
	return row
}

// WriteProgress renders progress rows as a table
func WriteProgress(w io.Writer, rows []ProgressRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "profile\tscope\tcomplete\tincomplete\titems\tlabeled\tavg duration")
	for _, row := range rows {
		pct := 0.0
		if row.Items > 0 {
			pct = float64(row.Labeled) / float64(row.Items) * 100
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d (%.0f%%)\t%.1fs\n",
			row.Profile, row.Scope, row.Complete, row.Incomplete, row.Items, row.Labeled, pct, row.AvgDuration)
	}
	tw.Flush() //nolint:errcheck // best effort console output
}
