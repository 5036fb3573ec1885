package model

import (
	"strings"
	"testing"
)

// TestPageTreeNesting tests that shared path prefixes become shared parents.
func TestPageTreeNesting(t *testing.T) {
	t.Parallel()

	records := []PageRecord{
		{URL: "http://example.com/"},
		{URL: "http://example.com/about"},
		{URL: "http://example.com/blog/index.html"},
		{URL: "http://example.com/blog/2025/launch"},
	}

	tree := NewPageTree(records)
	out := tree.String()

	want := "├── /\n" +
		"├── about\n" +
		"└── blog\n" +
		"    ├── 2025\n" +
		"    │   └── launch\n" +
		"    └── index.html\n"
	if out != want {
		t.Errorf("tree rendering mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}

	// blog must parent both index.html and 2025/launch: each appears once,
	// indented beneath a single blog entry.
	if strings.Count(out, "blog") != 1 {
		t.Errorf("expected a single blog node, got:\n%s", out)
	}
}

// TestPageTreeDeduplicates tests that identical paths collapse to one node.
func TestPageTreeDeduplicates(t *testing.T) {
	t.Parallel()

	records := []PageRecord{
		{URL: "http://example.com/docs"},
		{URL: "http://example.com/docs"},
	}

	tree := NewPageTree(records)
	if got := strings.Count(tree.String(), "docs"); got != 1 {
		t.Errorf("expected one docs node, got %d", got)
	}
}

// TestPageTreeEmpty tests the zero-page case.
func TestPageTreeEmpty(t *testing.T) {
	t.Parallel()

	tree := NewPageTree(nil)
	if !tree.Empty() {
		t.Error("tree built from no records should be empty")
	}
	if tree.String() != "" {
		t.Errorf("empty tree should render nothing, got %q", tree.String())
	}
}

// TestPageTreeOrdering tests lexicographic sibling ordering.
func TestPageTreeOrdering(t *testing.T) {
	t.Parallel()

	records := []PageRecord{
		{URL: "http://example.com/zebra"},
		{URL: "http://example.com/alpha"},
		{URL: "http://example.com/mid"},
	}

	out := NewPageTree(records).String()
	alpha := strings.Index(out, "alpha")
	mid := strings.Index(out, "mid")
	zebra := strings.Index(out, "zebra")

	if !(alpha < mid && mid < zebra) {
		t.Errorf("siblings not in lexicographic order:\n%s", out)
	}
}
