// Package runner sequences feed walker sessions across regions and profiles.
// Orchestration is idempotent: everything is driven off the store's completed
// counts, so re-running a satisfied plan performs no work.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/shortscope/shortscope/pkg/config"
	"github.com/shortscope/shortscope/pkg/domain"
	"github.com/shortscope/shortscope/pkg/surface"
	"github.com/shortscope/shortscope/pkg/walker"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the session persistence surface the orchestrators drive
type Store interface {
	Append(ctx context.Context, sess *domain.Session, rec domain.ItemRecord) error
	LatestIncomplete(ctx context.Context, profile string, scope domain.Scope, target int) (*domain.Session, error)
	CompletedCount(ctx context.Context, profile string, scope domain.Scope, target int) (int, error)
}

// SurfaceFactory opens a fresh feed surface bound to a profile's browser
// identity. One surface per session, the walker closes it.
type SurfaceFactory func(ctx context.Context, profileID string) (surface.Surface, error)

// maxConsecutiveFailures bounds how many sessions in a row may fail before
// the run aborts instead of hammering a broken surface
const maxConsecutiveFailures = 3

// Runner orchestrates training and measurement runs for the configured
// profiles
type Runner struct {
	cfg        *config.Config
	store      Store
	labeler    walker.Labeler
	newSurface SurfaceFactory
}

// New creates a runner over the given collaborators
func New(cfg *config.Config, store Store, labeler walker.Labeler, newSurface SurfaceFactory) *Runner {
	return &Runner{cfg: cfg, store: store, labeler: labeler, newSurface: newSurface}
}

// Train runs training sessions for one profile until every region in its
// plan row has the configured number of complete sessions. Already-satisfied
// regions are skipped, an incomplete session is resumed before new ones
// start. Safe to re-run.
func (r *Runner) Train(ctx context.Context, profileID string) error {
	plan, err := r.cfg.Plan()
	if err != nil {
		return fmt.Errorf("build experiment plan: %w", err)
	}
	order, ok := plan[profileID]
	if !ok {
		return fmt.Errorf("unknown profile %q", profileID)
	}

	lgr.Printf("[INFO] training run for %s, region order %v", profileID, order)
	switch r.cfg.Training.Sequencing {
	case "blocked":
		err = r.trainBlocked(ctx, profileID, order)
	default: // staggered
		err = r.trainStaggered(ctx, profileID, order)
	}
	if err != nil {
		return err
	}
	lgr.Printf("[INFO] training run for %s satisfied", profileID)
	return nil
}

// trainStaggered cycles one session per unsatisfied region per pass,
// spreading time-of-day and platform drift evenly across regions. Failed
// sessions get retried on the next pass.
func (r *Runner) trainStaggered(ctx context.Context, profileID string, order []string) error {
	target := r.cfg.Training.SessionsPerRegion
	failures := 0
	for {
		allDone := true
		for _, region := range order {
			done, err := r.store.CompletedCount(ctx, profileID, domain.Scope(region), r.cfg.Training.ItemsPerSession)
			if err != nil {
				return fmt.Errorf("completed count for %s/%s: %w", profileID, region, err)
			}
			if done >= target {
				continue
			}
			allDone = false
			if err := r.trainingSession(ctx, profileID, region); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				failures++
				lgr.Printf("[WARN] training session failed for %s/%s: %v", profileID, region, err)
				if failures >= maxConsecutiveFailures {
					return fmt.Errorf("%d training sessions failed in a row, giving up: %w", failures, err)
				}
				continue
			}
			failures = 0
		}
		if allDone {
			return nil
		}
	}
}

// trainBlocked finishes all sessions for one region before moving to the next
func (r *Runner) trainBlocked(ctx context.Context, profileID string, order []string) error {
	target := r.cfg.Training.SessionsPerRegion
	for _, region := range order {
		failures := 0
		for {
			done, err := r.store.CompletedCount(ctx, profileID, domain.Scope(region), r.cfg.Training.ItemsPerSession)
			if err != nil {
				return fmt.Errorf("completed count for %s/%s: %w", profileID, region, err)
			}
			if done >= target {
				break
			}
			if err := r.trainingSession(ctx, profileID, region); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				failures++
				lgr.Printf("[WARN] training session failed for %s/%s: %v", profileID, region, err)
				if failures >= maxConsecutiveFailures {
					return fmt.Errorf("%d training sessions failed in a row, giving up: %w", failures, err)
				}
				continue
			}
			failures = 0
		}
	}
	return nil
}

// trainingSession resumes the latest incomplete session for the region or
// starts a fresh one. The seed is picked round-robin by completed count, so
// every seed in the pool gets used about equally often.
func (r *Runner) trainingSession(ctx context.Context, profileID, region string) error {
	scope := domain.Scope(region)
	target := r.cfg.Training.ItemsPerSession

	sess, err := r.store.LatestIncomplete(ctx, profileID, scope, target)
	if err != nil {
		return fmt.Errorf("latest incomplete for %s/%s: %w", profileID, region, err)
	}
	if sess == nil {
		sess = &domain.Session{Profile: profileID, Scope: scope, ID: domain.NewSessionID(time.Now())}
	}

	done, err := r.store.CompletedCount(ctx, profileID, scope, target)
	if err != nil {
		return fmt.Errorf("completed count for %s/%s: %w", profileID, region, err)
	}
	seeds := r.cfg.SeedURLs(region)
	if len(seeds) == 0 {
		return fmt.Errorf("no seed urls for region %q", region)
	}
	seed := seeds[done%len(seeds)]

	sfc, err := r.newSurface(ctx, profileID)
	if err != nil {
		return fmt.Errorf("open feed surface for %s: %w", profileID, err)
	}

	params := walker.Params{
		EntryURL:    seed,
		Target:      target,
		LoadTimeout: r.cfg.Browser.LoadTimeout,
		Training:    true,
		Region:      region,
		DwellMin:    r.cfg.Training.DwellMin,
		DwellMax:    r.cfg.Training.DwellMax,
		AdvanceMin:  r.cfg.Measurement.AdvanceMin,
		AdvanceMax:  r.cfg.Measurement.AdvanceMax,
	}
	if err := walker.New(sfc, r.store, r.labeler).Walk(ctx, sess, params); err != nil {
		return err
	}
	lgr.Printf("[INFO] session %s for %s/%s: %d items, %d related",
		sess.ID, profileID, region, len(sess.Records), sess.RelatedCount())
	return nil
}

// Measure runs home feed sessions for one profile until the configured
// sample size is reached, resuming any incomplete session first. Sessions
// never engage with the feed, measurement is a passive observation.
func (r *Runner) Measure(ctx context.Context, profileID string) error {
	target := r.cfg.Measurement.ItemsPerSession
	failures := 0
	for {
		done, err := r.store.CompletedCount(ctx, profileID, domain.ScopeHome, target)
		if err != nil {
			return fmt.Errorf("completed count for %s/home: %w", profileID, err)
		}
		if done >= r.cfg.Measurement.Sessions {
			lgr.Printf("[INFO] measurement run for %s satisfied, %d sessions", profileID, done)
			return nil
		}

		if err := r.measurementSession(ctx, profileID); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			lgr.Printf("[WARN] measurement session failed for %s: %v", profileID, err)
			if failures >= maxConsecutiveFailures {
				return fmt.Errorf("%d measurement sessions failed in a row, giving up: %w", failures, err)
			}
			continue
		}
		failures = 0
	}
}

func (r *Runner) measurementSession(ctx context.Context, profileID string) error {
	target := r.cfg.Measurement.ItemsPerSession

	sess, err := r.store.LatestIncomplete(ctx, profileID, domain.ScopeHome, target)
	if err != nil {
		return fmt.Errorf("latest incomplete for %s/home: %w", profileID, err)
	}
	if sess == nil {
		sess = &domain.Session{Profile: profileID, Scope: domain.ScopeHome, ID: domain.NewSessionID(time.Now())}
	}

	sfc, err := r.newSurface(ctx, profileID)
	if err != nil {
		return fmt.Errorf("open feed surface for %s: %w", profileID, err)
	}

	params := walker.Params{
		EntryURL:    r.cfg.Measurement.HomeURL,
		Target:      target,
		LoadTimeout: r.cfg.Browser.LoadTimeout,
		Regions:     r.cfg.RegionNames(),
		AdvanceMin:  r.cfg.Measurement.AdvanceMin,
		AdvanceMax:  r.cfg.Measurement.AdvanceMax,
	}
	if err := walker.New(sfc, r.store, r.labeler).Walk(ctx, sess, params); err != nil {
		return err
	}

	counts := sess.RegionCounts()
	delete(counts, "")
	lgr.Printf("[INFO] session %s for %s/home: %d items, region counts %v",
		sess.ID, profileID, len(sess.Records), counts)
	return nil
}

// TrainAll runs training for every configured profile in parallel. Each
// profile owns its browser identity and its store rows, so there is no
// shared mutable state between them.
func (r *Runner) TrainAll(ctx context.Context) error {
	return r.forAllProfiles(ctx, r.Train)
}

// MeasureAll runs measurement for every configured profile in parallel
func (r *Runner) MeasureAll(ctx context.Context) error {
	return r.forAllProfiles(ctx, r.Measure)
}

func (r *Runner) forAllProfiles(ctx context.Context, run func(context.Context, string) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range r.cfg.Profiles {
		g.Go(func() error {
			if err := run(gctx, p.ID); err != nil {
				return fmt.Errorf("profile %s: %w", p.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}
