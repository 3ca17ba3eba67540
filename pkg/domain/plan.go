package domain

import "fmt"

// Plan maps a profile id to the ordered list of regions it trains on.
// A counterbalanced plan eliminates presentation order as a confound:
// across profiles every region appears equally often at every ordinal
// position.
type Plan map[string][]string

// NewLatinSquarePlan builds a counterbalanced plan by cyclic rotation:
// profile i gets the region list rotated left by i. With as many profiles
// as regions this is a Latin square.
func NewLatinSquarePlan(profiles, regions []string) Plan {
	plan := make(Plan, len(profiles))
	for i, profile := range profiles {
		order := make([]string, len(regions))
		for j := range regions {
			order[j] = regions[(i+j)%len(regions)]
		}
		plan[profile] = order
	}
	return plan
}

// Validate checks plan shape: every profile orders exactly the configured
// regions, each once. When strict, it additionally enforces the
// counterbalancing invariant that every region appears the same number of
// times at every ordinal position across profiles.
func (p Plan) Validate(regions []string, strict bool) error {
	want := make(map[string]bool, len(regions))
	for _, r := range regions {
		want[r] = true
	}

	for profile, order := range p {
		if len(order) != len(regions) {
			return fmt.Errorf("profile %s orders %d regions, want %d", profile, len(order), len(regions))
		}
		seen := make(map[string]bool, len(order))
		for _, r := range order {
			if !want[r] {
				return fmt.Errorf("profile %s orders unknown region %q", profile, r)
			}
			if seen[r] {
				return fmt.Errorf("profile %s orders region %q twice", profile, r)
			}
			seen[r] = true
		}
	}

	if !strict {
		return nil
	}

	if len(p)%len(regions) != 0 {
		return fmt.Errorf("strict plan needs a multiple of %d profiles, got %d", len(regions), len(p))
	}
	perPosition := len(p) / len(regions)
	for pos := 0; pos < len(regions); pos++ {
		counts := map[string]int{}
		for _, order := range p {
			counts[order[pos]]++
		}
		for _, r := range regions {
			if counts[r] != perPosition {
				return fmt.Errorf("region %q appears %d times at position %d, want %d", r, counts[r], pos, perPosition)
			}
		}
	}
	return nil
}
