package report

import (
	"io"
	"sort"

	"github.com/starikov/sitetools/internal/model"
)

// Writer defines the interface for report output.
//
// Design decision: We use an interface so the CLI can pick a format at
// runtime and tests can render into buffers; the destinations differ,
// the API does not.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.CrawlResult) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// brokenGroup is one failing target with every page that linked to it.
type brokenGroup struct {
	target    string
	status    string
	referrers []string
}

// groupBroken groups broken links by target and sorts both the groups and
// each group's referrers, so output is stable across runs.
// An empty referrer (the seed failing on direct visit) is rendered as
// "(direct visit)".
func groupBroken(links []model.BrokenLink) []brokenGroup {
	byTarget := make(map[string]*brokenGroup)
	for _, link := range links {
		g, ok := byTarget[link.Target]
		if !ok {
			g = &brokenGroup{target: link.Target, status: link.StatusText()}
			byTarget[link.Target] = g
		}
		ref := link.Referrer
		if ref == "" {
			ref = "(direct visit)"
		}
		g.referrers = append(g.referrers, ref)
	}

	groups := make([]brokenGroup, 0, len(byTarget))
	for _, g := range byTarget {
		sort.Strings(g.referrers)
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].target < groups[j].target })

	return groups
}
