// Package walker drives one feed session from entry point to target length,
// persisting after every item so a crash never loses processed work.
package walker

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/shortscope/shortscope/pkg/classify"
	"github.com/shortscope/shortscope/pkg/domain"
	"github.com/shortscope/shortscope/pkg/surface"
)

//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder
//go:generate moq -out mocks/labeler.go -pkg mocks -skip-ensure -fmt goimports . Labeler

// Recorder persists session progress, one call per observed item
type Recorder interface {
	Append(ctx context.Context, sess *domain.Session, rec domain.ItemRecord) error
}

// Labeler classifies an observed item: binary relatedness against one region
// during training, one-of-N region label during measurement
type Labeler interface {
	Related(ctx context.Context, region string, item classify.Item) (bool, error)
	Region(ctx context.Context, regions []string, item classify.Item) (string, error)
}

// Params configures a single session walk
type Params struct {
	EntryURL    string
	Target      int           // records required for the session to be complete
	LoadTimeout time.Duration // bounded wait for the feed surface to become ready

	// Training switches the walker to the training variant: items are
	// labeled with binary relatedness against Region, related items get a
	// longer dwell and an engagement signal. The measurement variant labels
	// against Regions and never engages.
	Training bool
	Region   string
	Regions  []string

	DwellMin   time.Duration // dwell bounds for related items, training only
	DwellMax   time.Duration
	AdvanceMin time.Duration // delay bounds between items
	AdvanceMax time.Duration
}

// Walker owns one feed surface for the duration of a session
type Walker struct {
	surface surface.Surface
	store   Recorder
	labeler Labeler
}

// New creates a walker over the given surface. The walker takes ownership:
// the surface is closed when Walk returns, however it returns.
func New(sfc surface.Surface, store Recorder, labeler Labeler) *Walker {
	return &Walker{surface: sfc, store: store, labeler: labeler}
}

// active tracks (profile, scope) pairs with a session in flight. Two walkers
// on the same pair would fight over feed cursor state and session rows, so
// the second one is refused instead.
var active sync.Map

func acquire(profile string, scope domain.Scope) (release func(), err error) {
	key := profile + "/" + string(scope)
	if _, loaded := active.LoadOrStore(key, struct{}{}); loaded {
		return nil, fmt.Errorf("session already active for profile %q scope %q", profile, scope)
	}
	return func() { active.Delete(key) }, nil
}

// Walk runs the session to its target length, resuming from however many
// records it already holds. Already-persisted records survive any failure;
// only feed-surface failures and persistence failures abort the session.
func (w *Walker) Walk(ctx context.Context, sess *domain.Session, p Params) error {
	release, err := acquire(sess.Profile, sess.Scope)
	if err != nil {
		return err
	}
	defer release()

	defer func() {
		if cerr := w.surface.Close(); cerr != nil {
			lgr.Printf("[WARN] close feed surface: %v", cerr)
		}
	}()

	if err := w.surface.Load(ctx, p.EntryURL); err != nil {
		return fmt.Errorf("load feed: %w", err)
	}
	if err := w.surface.WaitReady(ctx, p.LoadTimeout); err != nil {
		return fmt.Errorf("feed not ready: %w", err)
	}

	if err := w.skipProcessed(ctx, sess, p); err != nil {
		return err
	}

	for i := len(sess.Records); i < p.Target; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.processItem(ctx, sess, p, i); err != nil {
			return err
		}
	}

	lgr.Printf("[INFO] session %s complete for %s/%s, %d records",
		sess.ID, sess.Profile, sess.Scope, len(sess.Records))
	return nil
}

// skipProcessed advances the live cursor past items already persisted,
// assuming the feed serves this viewer the same ordering it did before the
// restart. That assumption is the platform's to break; it is logged so a
// mismatch can be traced.
func (w *Walker) skipProcessed(ctx context.Context, sess *domain.Session, p Params) error {
	skip := len(sess.Records)
	if skip == 0 {
		return nil
	}
	lgr.Printf("[INFO] resuming session %s for %s/%s, skipping %d processed items",
		sess.ID, sess.Profile, sess.Scope, skip)
	for i := 0; i < skip; i++ {
		w.surface.ClearCaptured()
		if err := w.surface.Advance(ctx); err != nil {
			return fmt.Errorf("skip processed item %d: %w", i, err)
		}
		sleepRange(ctx, p.AdvanceMin, p.AdvanceMax)
	}
	w.surface.ClearCaptured()
	return nil
}

// processItem runs one VIEWING step: extract, label, persist, then clear
// captures before advancing so the next item cannot inherit this item's
// transcript, then delay.
func (w *Walker) processItem(ctx context.Context, sess *domain.Session, p Params, i int) error {
	ext, err := surface.Extract(w.surface)
	if err != nil {
		return fmt.Errorf("extract item %d: %w", i, err)
	}

	rec, related := w.label(ctx, p, ext)
	if err := w.store.Append(ctx, sess, rec); err != nil {
		return fmt.Errorf("persist item %d: %w", i, err)
	}
	lgr.Printf("[DEBUG] item %d/%d for %s/%s: %s related=%v",
		i+1, p.Target, sess.Profile, sess.Scope, rec.VideoID, related)

	if p.Training && related {
		if err := w.surface.Engage(ctx); err != nil {
			lgr.Printf("[WARN] engage item %d: %v", i, err)
		}
	}

	w.surface.ClearCaptured()
	if err := w.surface.Advance(ctx); err != nil {
		return fmt.Errorf("advance after item %d: %w", i, err)
	}

	if p.Training && related {
		sleepRange(ctx, p.DwellMin, p.DwellMax)
	} else {
		sleepRange(ctx, p.AdvanceMin, p.AdvanceMax)
	}
	return nil
}

// label classifies the extraction and builds the phase-appropriate record.
// Classifier failures are a normal outcome of a noisy LLM backend, the item
// degrades to not-related/none and the session continues.
func (w *Walker) label(ctx context.Context, p Params, ext surface.Extraction) (rec domain.ItemRecord, related bool) {
	item := classify.Item{Title: ext.Title, Channel: ext.Channel, Transcript: ext.Transcript}

	if p.Training {
		related, err := w.labeler.Related(ctx, p.Region, item)
		if err != nil {
			lgr.Printf("[WARN] classify %s: %v, treating as not related", ext.URL, err)
			related = false
		}
		rec = domain.NewTrainingRecord(ext.URL, time.Now(), related)
		fillExtraction(&rec, ext)
		return rec, related
	}

	region, err := w.labeler.Region(ctx, p.Regions, item)
	if err != nil {
		lgr.Printf("[WARN] classify %s: %v, treating as none", ext.URL, err)
		region = ""
	}
	rec = domain.NewMeasurementRecord(ext.URL, time.Now(), region)
	fillExtraction(&rec, ext)
	return rec, region != ""
}

func fillExtraction(rec *domain.ItemRecord, ext surface.Extraction) {
	rec.Title = ext.Title
	rec.Channel = ext.Channel
	rec.Transcript = ext.Transcript
	rec.DurationSeconds = ext.DurationSeconds
}

// sleepRange blocks for a uniformly random duration in [minD, maxD],
// returning early on context cancellation
func sleepRange(ctx context.Context, minD, maxD time.Duration) {
	d := minD
	if maxD > minD {
		d += time.Duration(rand.Int63n(int64(maxD - minD))) //nolint:gosec // jitter, not crypto
	}
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
