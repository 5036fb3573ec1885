package opml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingBody is returned when the OPML document has no <body> element.
var ErrMissingBody = errors.New("opml: document is missing a <body> element")

// DefaultDocTitle is the Markdown document title used when the caller
// does not override it.
const DefaultDocTitle = "Your First RSS Starter Pack"

// Feed is one subscription collected from an OPML outline leaf.
type Feed struct {
	// Title is the feed's display name (title attribute, falling back to
	// text, falling back to "Untitled").
	Title string
	// Homepage is the site URL (htmlUrl attribute, falling back to the
	// feed URL itself).
	Homepage string
	// RSS is the feed URL (xmlUrl attribute).
	RSS string
}

// Collection holds feeds grouped by category.
type Collection struct {
	byCategory map[string][]Feed
}

// document mirrors the OPML XML structure. Only the parts the converter
// needs are mapped.
type document struct {
	XMLName xml.Name `xml:"opml"`
	Body    *struct {
		Outlines []outline `xml:"outline"`
	} `xml:"body"`
}

// outline is one <outline> node. A node with a non-empty XMLURL is a feed
// leaf; anything else is treated as a folder.
type outline struct {
	Title    string    `xml:"title,attr"`
	Text     string    `xml:"text,attr"`
	XMLURL   string    `xml:"xmlUrl,attr"`
	HTMLURL  string    `xml:"htmlUrl,attr"`
	Children []outline `xml:"outline"`
}

// Parse reads an OPML document and collects its feeds into a Collection.
// It returns ErrMissingBody if the document has no <body> element and a
// wrapped xml error if the input is not well-formed.
func Parse(r io.Reader) (*Collection, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("opml: parse: %w", err)
	}
	if doc.Body == nil {
		return nil, ErrMissingBody
	}

	c := &Collection{byCategory: make(map[string][]Feed)}
	for _, node := range doc.Body.Outlines {
		c.collect(node, nil)
	}
	return c, nil
}

// collect walks outline nodes, tracking the folder path. Feed leaves are
// filed under the innermost folder name, or "Misc" at the top level.
func (c *Collection) collect(node outline, path []string) {
	title := strings.TrimSpace(node.Title)
	if title == "" {
		title = strings.TrimSpace(node.Text)
	}
	if title == "" {
		title = "Untitled"
	}

	if rss := strings.TrimSpace(node.XMLURL); rss != "" {
		homepage := strings.TrimSpace(node.HTMLURL)
		if homepage == "" {
			homepage = rss
		}
		category := "Misc"
		if len(path) > 0 {
			category = path[len(path)-1]
		}
		c.byCategory[category] = append(c.byCategory[category], Feed{
			Title:    title,
			Homepage: homepage,
			RSS:      rss,
		})
		return
	}

	for _, child := range node.Children {
		c.collect(child, append(path, title))
	}
}

// Empty reports whether the collection holds no feeds at all.
func (c *Collection) Empty() bool {
	return len(c.byCategory) == 0
}

// Feeds returns the feeds filed under the given category, in document
// order. The returned slice is shared; callers must not modify it.
func (c *Collection) Feeds(category string) []Feed {
	return c.byCategory[category]
}
