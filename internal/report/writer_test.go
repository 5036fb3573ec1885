package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/starikov/sitetools/internal/model"
)

// sampleResult builds a small crawl result with one broken target linked
// from two pages.
func sampleResult() *model.CrawlResult {
	result := model.NewCrawlResult("http://example.com")
	result.AddPage(model.PageRecord{URL: "http://example.com", StatusCode: 200})
	result.AddPage(model.PageRecord{URL: "http://example.com/about", StatusCode: 200})
	result.AddPage(model.PageRecord{URL: "http://example.com/blog/post", StatusCode: 200})
	result.AddBroken(model.BrokenLink{
		Target:     "http://example.com/gone",
		Referrer:   "http://example.com/blog/post",
		StatusCode: 404,
	})
	result.AddBroken(model.BrokenLink{
		Target:   "http://example.com/gone",
		Referrer: "http://example.com/about",
		Kind:     "",
		// same target from a second page; grouped under one entry
		StatusCode: 404,
	})
	result.AddBroken(model.BrokenLink{
		Target:   "http://example.com/slow",
		Referrer: "http://example.com",
		Kind:     model.KindTimeout,
	})
	return result
}

// TestGroupBroken tests grouping and ordering of broken links.
func TestGroupBroken(t *testing.T) {
	t.Parallel()

	groups := groupBroken(sampleResult().Broken)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}

	// Lexicographic by target: /gone before /slow.
	if groups[0].target != "http://example.com/gone" {
		t.Errorf("first group = %q, want /gone target", groups[0].target)
	}
	if groups[0].status != "404" {
		t.Errorf("first group status = %q, want 404", groups[0].status)
	}
	if len(groups[0].referrers) != 2 {
		t.Errorf("referrers = %v, want two sorted entries", groups[0].referrers)
	}
	if groups[1].status != "timeout" {
		t.Errorf("second group status = %q, want timeout", groups[1].status)
	}
}

// TestGroupBrokenDirectVisit tests the empty-referrer rendering.
func TestGroupBrokenDirectVisit(t *testing.T) {
	t.Parallel()

	groups := groupBroken([]model.BrokenLink{
		{Target: "http://example.com", StatusCode: 404},
	})

	if len(groups) != 1 || groups[0].referrers[0] != "(direct visit)" {
		t.Errorf("groups = %+v, want single direct-visit entry", groups)
	}
}

// TestSimpleWriter tests the text report sections.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("with broken links", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(sampleResult())
		if err != nil {
			t.Fatalf("Write() error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("Write() = %d bytes, buffer holds %d", n, buf.Len())
		}

		out := buf.String()
		for _, want := range []string{
			"=== Directory tree of visited pages ===",
			"=== Broken links/pages ===",
			"http://example.com/gone (404)",
			"http://example.com/slow (timeout)",
			"└── linked from: http://example.com/about",
			"blog",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("report missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("clean crawl", func(t *testing.T) {
		t.Parallel()

		result := model.NewCrawlResult("http://example.com")
		result.AddPage(model.PageRecord{URL: "http://example.com", StatusCode: 200})

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(result); err != nil {
			t.Fatalf("Write() error: %v", err)
		}

		if !strings.Contains(buf.String(), "No broken pages found.") {
			t.Errorf("clean report missing the no-broken notice:\n%s", buf.String())
		}
		if strings.Contains(buf.String(), "=== Broken links/pages ===") {
			t.Errorf("clean report must not contain a broken section:\n%s", buf.String())
		}
	})

	t.Run("truncated crawl", func(t *testing.T) {
		t.Parallel()

		result := sampleResult()
		result.Truncated = true

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(result); err != nil {
			t.Fatalf("Write() error: %v", err)
		}

		if !strings.Contains(buf.String(), "truncated") {
			t.Errorf("truncated crawl must be reported:\n%s", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown report structure.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(sampleResult()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Link Check Report",
		"## Directory tree of visited pages",
		"## Broken links/pages",
		"http://example.com/gone",
		"timeout",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown report missing %q:\n%s", want, out)
		}
	}
}
