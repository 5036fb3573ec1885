package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/starikov/sitetools/internal/model"
)

// SimpleWriter outputs the human-readable text report.
//
// Design decision: We use plain text with ASCII section markers rather
// than ANSI colors because:
//  1. It works in all terminals without compatibility issues
//  2. It's easy to pipe to files or other tools
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the crawl result: a short summary, the directory tree of
// visited pages, and the broken link list.
func (w *SimpleWriter) Write(result *model.CrawlResult) (int, error) {
	var sb strings.Builder

	w.writeSummary(&sb, result)
	w.writeTree(&sb, result)
	w.writeBroken(&sb, result)

	return w.output.Write([]byte(sb.String()))
}

// writeSummary writes the crawl counters and the truncation notice.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, result *model.CrawlResult) {
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Crawled %d page(s) from %s in %s\n",
		result.PagesCrawled, result.Seed, result.Duration.Round(time.Millisecond))
	if result.Truncated {
		sb.WriteString("Crawl truncated at the page cap; the site was not fully covered.\n")
	}
}

// writeTree writes the directory tree of visited pages.
func (w *SimpleWriter) writeTree(sb *strings.Builder, result *model.CrawlResult) {
	sb.WriteString("\n=== Directory tree of visited pages ===\n")

	tree := model.NewPageTree(result.Visited)
	if tree.Empty() {
		sb.WriteString("(no pages visited)\n")
		return
	}
	sb.WriteString(tree.String())
}

// writeBroken writes the broken link list grouped by target.
func (w *SimpleWriter) writeBroken(sb *strings.Builder, result *model.CrawlResult) {
	if !result.HasBroken() {
		sb.WriteString("\nNo broken pages found.\n")
		return
	}

	sb.WriteString("\n=== Broken links/pages ===\n")
	for _, group := range groupBroken(result.Broken) {
		fmt.Fprintf(sb, "%s (%s)\n", group.target, group.status)
		for _, ref := range group.referrers {
			fmt.Fprintf(sb, "   └── linked from: %s\n", ref)
		}
	}
}
