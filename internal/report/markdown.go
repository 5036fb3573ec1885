package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/starikov/sitetools/internal/model"
)

// MarkdownWriter outputs the crawl report in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(result *model.CrawlResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeTree(md, result)
	w.writeBroken(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with crawl information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.CrawlResult) {
	md.H1("Link Check Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Seed URL", "`" + result.Seed + "`"},
			{"Crawl Date", result.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Pages Crawled", strconv.Itoa(result.PagesCrawled)},
			{"Broken Links", strconv.Itoa(len(result.Broken))},
			{"Status", statusText(result)},
		},
	})
	md.PlainText("")

	switch {
	case result.HasBroken():
		md.Warningf("%d broken link(s) found.", len(result.Broken))
	default:
		md.Tip("No broken pages found.")
	}
	md.PlainText("")
}

// statusText returns the status cell based on the termination state.
func statusText(result *model.CrawlResult) string {
	if result.Truncated {
		return "⚠️ Truncated at page cap (partial results)"
	}
	return "✅ Complete"
}

// writeTree writes the visited-page tree inside a code block, since
// box-drawing output only lines up in monospace.
func (w *MarkdownWriter) writeTree(md *markdown.Markdown, result *model.CrawlResult) {
	md.H2("Directory tree of visited pages")
	md.PlainText("")

	tree := model.NewPageTree(result.Visited)
	if tree.Empty() {
		md.PlainText("No pages visited.")
		md.PlainText("")
		return
	}

	md.CodeBlocks(markdown.SyntaxHighlightText, tree.String())
	md.PlainText("")
}

// writeBroken writes the broken link table grouped by target.
func (w *MarkdownWriter) writeBroken(md *markdown.Markdown, result *model.CrawlResult) {
	md.H2("Broken links/pages")
	md.PlainText("")

	if !result.HasBroken() {
		md.PlainText("None.")
		md.PlainText("")
		return
	}

	groups := groupBroken(result.Broken)
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		for _, ref := range g.referrers {
			rows = append(rows, []string{"`" + g.target + "`", g.status, "`" + ref + "`"})
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Target", "Status", "Linked from"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [sitetools](https://github.com/starikov/sitetools)*")
}
