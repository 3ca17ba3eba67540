package runner

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/shortscope/shortscope/pkg/classify"
	"github.com/shortscope/shortscope/pkg/surface"
)

// SeedResult is the classifier verdict for one configured seed item
type SeedResult struct {
	Region  string
	URL     string
	Related bool
	Err     error
}

// SeedCheck loads every region's seed items in the profile's browser and
// asks the classifier whether each one is related to its region. Seeds are
// hand-picked as known-relevant, so a "not related" verdict points at a bad
// seed or a misbehaving classifier before a training run burns hours on it.
func (r *Runner) SeedCheck(ctx context.Context, profileID string) ([]SeedResult, error) {
	sfc, err := r.newSurface(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("open feed surface for %s: %w", profileID, err)
	}
	defer func() {
		if cerr := sfc.Close(); cerr != nil {
			lgr.Printf("[WARN] close feed surface: %v", cerr)
		}
	}()

	var results []SeedResult
	for _, region := range r.cfg.RegionNames() {
		for _, seed := range r.cfg.SeedURLs(region) {
			res := r.checkSeed(ctx, sfc, region, seed)
			if res.Err != nil {
				lgr.Printf("[WARN] seed check %s (%s): %v", seed, region, res.Err)
			} else {
				lgr.Printf("[INFO] seed check %s (%s): related=%v", seed, region, res.Related)
			}
			results = append(results, res)
			if ctx.Err() != nil {
				return results, ctx.Err()
			}
		}
	}
	return results, nil
}

func (r *Runner) checkSeed(ctx context.Context, sfc surface.Surface, region, seed string) SeedResult {
	res := SeedResult{Region: region, URL: seed}

	sfc.ClearCaptured()
	if err := sfc.Load(ctx, seed); err != nil {
		res.Err = fmt.Errorf("load seed: %w", err)
		return res
	}
	if err := sfc.WaitReady(ctx, r.cfg.Browser.LoadTimeout); err != nil {
		res.Err = fmt.Errorf("seed not ready: %w", err)
		return res
	}

	ext, err := surface.Extract(sfc)
	if err != nil {
		res.Err = fmt.Errorf("extract seed: %w", err)
		return res
	}
	item := classify.Item{Title: ext.Title, Channel: ext.Channel, Transcript: ext.Transcript}
	related, err := r.labeler.Related(ctx, region, item)
	if err != nil {
		res.Err = fmt.Errorf("classify seed: %w", err)
		return res
	}
	res.Related = related
	return res
}
