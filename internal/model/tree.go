package model

import (
	"io"
	"sort"
	"strings"
)

// PageTree is a directory-style view of visited page paths.
// Each node is one path segment; children are rendered in lexicographic
// order so output is stable regardless of crawl discovery order.
type PageTree struct {
	children map[string]*PageTree
}

// NewPageTree builds a tree from the visited page records.
func NewPageTree(records []PageRecord) *PageTree {
	t := &PageTree{children: make(map[string]*PageTree)}
	for _, rec := range records {
		t.insert(rec.Segments())
	}
	return t
}

// insert adds one path, creating intermediate nodes as needed.
func (t *PageTree) insert(segments []string) {
	node := t
	for _, seg := range segments {
		child, ok := node.children[seg]
		if !ok {
			child = &PageTree{children: make(map[string]*PageTree)}
			node.children[seg] = child
		}
		node = child
	}
}

// Empty reports whether the tree has no entries.
func (t *PageTree) Empty() bool {
	return len(t.children) == 0
}

// Render writes the tree using box-drawing branch characters:
//
//	├── blog
//	│   ├── 2025
//	│   │   └── launch
//	│   └── index.html
//	└── about
//
// The empty segment (site root) is rendered as "/".
func (t *PageTree) Render(w io.Writer) error {
	return t.render(w, "")
}

func (t *PageTree) render(w io.Writer, prefix string) error {
	names := make([]string, 0, len(t.children))
	for name := range t.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		connector := "├── "
		extension := "│   "
		if i == len(names)-1 {
			connector = "└── "
			extension = "    "
		}

		label := name
		if label == "" {
			label = "/"
		}

		if _, err := io.WriteString(w, prefix+connector+label+"\n"); err != nil {
			return err
		}
		if err := t.children[name].render(w, prefix+extension); err != nil {
			return err
		}
	}
	return nil
}

// String renders the tree to a string. Convenient for reports and tests.
func (t *PageTree) String() string {
	var sb strings.Builder
	_ = t.render(&sb, "") //nolint:errcheck // strings.Builder never fails
	return sb.String()
}
