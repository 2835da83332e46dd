package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"wiremap/render"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// reportText is the plain-text conflict report: conflicts first, then the
// wiring rows that could not be placed.
func reportText(res *render.Result) string {
	var b strings.Builder
	if res.Conflicts.HasConflicts() {
		b.WriteString(render.ConflictBanner + "\n")
		for _, line := range res.Conflicts.Lines() {
			b.WriteString(line + "\n")
		}
	} else {
		b.WriteString("No pin conflicts.\n")
	}
	if len(res.Dropped) > 0 {
		fmt.Fprintf(&b, "%d wiring rows skipped:\n", len(res.Dropped))
		for _, d := range res.Dropped {
			b.WriteString("  " + d.String() + "\n")
		}
	}
	return b.String()
}

func copyReportToClipboard(res *render.Result) error {
	return clipboard.WriteAll(reportText(res))
}
