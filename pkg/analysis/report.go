package analysis

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
)

// WriteReport renders the tally and the inference result as a human-readable
// verdict with a per-region table
func WriteReport(w io.Writer, tally *Tally, res *Result) {
	bold := color.New(color.Bold).Sprint
	red := color.New(color.FgRed).Sprint
	green := color.New(color.FgGreen).Sprint
	yellow := color.New(color.FgYellow).Sprint

	fmt.Fprintf(w, "%s\n\n", bold("home feed conflict visibility vs severity"))
	fmt.Fprintf(w, "sessions: %d, items: %d, region-labeled: %d, unmatched: %d, skipped: %d\n\n",
		tally.Sessions, tally.Total, tally.Total-tally.NoRegion, tally.NoRegion, tally.Skipped)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "region\tobserved\texpected\tresidual\tflag")
	for _, rs := range res.Regions {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%+.2f\t%s\n",
			rs.Region, rs.Observed, rs.Expected, rs.Residual, residualFlag(rs, red, yellow))
	}
	tw.Flush() //nolint:errcheck // best effort console output

	fmt.Fprintf(w, "\nchi-square: %.3f (df %d), p-value: %.4g, alpha: %v\n",
		res.ChiSquare, res.DF, res.PValue, res.Alpha)

	if res.RejectNull {
		fmt.Fprintf(w, "%s\n", red("reject H0: visibility is NOT proportional to severity"))
		for _, rs := range res.Regions {
			if !rs.Significant05 {
				continue
			}
			direction := "under-represented"
			if rs.Over {
				direction = "over-represented"
			}
			fmt.Fprintf(w, "  %s is %s (residual %+.2f)\n", rs.Region, direction, rs.Residual)
		}
		return
	}
	fmt.Fprintf(w, "%s\n", green("fail to reject H0: visibility is consistent with severity"))
}

func residualFlag(rs RegionStat, red, yellow func(...interface{}) string) string {
	switch {
	case rs.Significant01:
		return red("**")
	case rs.Significant05:
		return yellow("*")
	}
	return ""
}

// WriteObserved renders the raw per-profile tally, useful before enough data
// exists for inference
func WriteObserved(w io.Writer, tally *Tally) {
	profiles := make([]string, 0, len(tally.ByProfile))
	for profile := range tally.ByProfile {
		profiles = append(profiles, profile)
	}
	sort.Strings(profiles)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "profile\tregion\tcount")
	for _, profile := range profiles {
		regions := make([]string, 0, len(tally.ByProfile[profile]))
		for region := range tally.ByProfile[profile] {
			regions = append(regions, region)
		}
		sort.Strings(regions)
		for _, region := range regions {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", profile, region, tally.ByProfile[profile][region])
		}
	}
	tw.Flush() //nolint:errcheck // best effort console output
}
