// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport prints one aligned row per summary:
//
//	PROBLEM  SOLVER  RUNS  FAILED  INFEASIBLE  MIN  AVG  MAX  AVG_TIME  BEST  GAP%
//
// BEST and GAP% read "-" when no best known value was given.
func WriteReport(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROBLEM\tSOLVER\tRUNS\tFAILED\tINFEASIBLE\tMIN\tAVG\tMAX\tAVG_TIME\tBEST\tGAP%")
	for _, s := range r.Summaries {
		best, gap := "-", "-"
		if s.HasBest {
			best = fmt.Sprintf("%.0f", s.Best)
			gap = fmt.Sprintf("%.2f", s.Gap)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.0f\t%.2f\t%.0f\t%s\t%s\t%s\n",
			s.Problem, s.Solver, s.Runs, s.Failed, s.Infeasible, s.Min, s.Avg, s.Max, s.AvgElapsed, best, gap)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("bench: write report: %w", err)
	}

	return nil
}
