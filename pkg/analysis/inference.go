package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Inference preconditions. Both are configuration or collection problems
// that must fail loudly instead of producing NaN verdicts.
var (
	ErrNoData     = errors.New("no observed data")
	ErrZeroWeight = errors.New("severity weight must be positive")
)

// two-tailed z thresholds for standardized residual flags
const (
	residualThreshold05 = 1.96
	residualThreshold01 = 2.58
)

// RegionStat is the per-region outcome of the goodness-of-fit test
type RegionStat struct {
	Region        string
	Observed      int
	Expected      float64
	Residual      float64 // standardized: (observed - expected) / sqrt(expected)
	Significant05 bool    // |residual| > 1.96
	Significant01 bool    // |residual| > 2.58
	Over          bool    // observed above expected
}

// Result is the outcome of testing observed region counts against the
// null hypothesis that feed visibility is proportional to severity
type Result struct {
	ChiSquare     float64
	DF            int
	PValue        float64
	Alpha         float64
	RejectNull    bool
	TotalObserved int
	Regions       []RegionStat // sorted by region name
}

// Evaluate runs a chi-square goodness-of-fit test of observed counts
// against expected counts proportional to severity weights. Regions present
// in severity but absent from observed count as zero observations.
func Evaluate(observed map[string]int, severity map[string]float64, alpha float64) (*Result, error) {
	if len(severity) < 2 {
		return nil, fmt.Errorf("need at least 2 regions, got %d", len(severity))
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("alpha must be in (0, 1), got %v", alpha)
	}

	regions := make([]string, 0, len(severity))
	weightSum := 0.0
	for region, weight := range severity {
		if weight <= 0 {
			return nil, fmt.Errorf("region %q: %w (got %v)", region, ErrZeroWeight, weight)
		}
		regions = append(regions, region)
		weightSum += weight
	}
	sort.Strings(regions)

	total := 0
	for _, region := range regions {
		total += observed[region]
	}
	if total == 0 {
		return nil, ErrNoData
	}

	res := &Result{
		DF:            len(regions) - 1,
		Alpha:         alpha,
		TotalObserved: total,
		Regions:       make([]RegionStat, 0, len(regions)),
	}
	for _, region := range regions {
		expected := severity[region] / weightSum * float64(total)
		obs := observed[region]
		residual := (float64(obs) - expected) / math.Sqrt(expected)
		res.ChiSquare += (float64(obs) - expected) * (float64(obs) - expected) / expected
		res.Regions = append(res.Regions, RegionStat{
			Region:        region,
			Observed:      obs,
			Expected:      expected,
			Residual:      residual,
			Significant05: math.Abs(residual) > residualThreshold05,
			Significant01: math.Abs(residual) > residualThreshold01,
			Over:          float64(obs) > expected,
		})
	}

	chiDist := distuv.ChiSquared{K: float64(res.DF)}
	res.PValue = 1 - chiDist.CDF(res.ChiSquare)
	res.RejectNull = res.PValue < alpha
	return res, nil
}
