package opml

import (
	"io"
	"sort"

	"github.com/nao1215/markdown"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Render writes the collection as a Markdown starter-pack document.
// docTitle overrides the H1; pass "" for DefaultDocTitle.
//
// Categories are ordered lexicographically, feeds within a category
// case-insensitively by title so "iMore" and "Ars" interleave the way a
// human would list them.
func Render(w io.Writer, c *Collection, docTitle string) error {
	if docTitle == "" {
		docTitle = DefaultDocTitle
	}

	md := markdown.NewMarkdown(w)
	md.H1(docTitle)
	md.PlainText("")
	md.PlainText(markdown.Italic("Import the accompanying **OPML** into any reader " +
		"(NetNewsWire, Reeder, Feedly, etc.) to pull everything at once."))
	md.PlainText("")

	collator := collate.New(language.English, collate.IgnoreCase)

	for _, category := range c.categories() {
		md.H3(category)

		feeds := make([]Feed, len(c.byCategory[category]))
		copy(feeds, c.byCategory[category])
		sort.SliceStable(feeds, func(i, j int) bool {
			return collator.CompareString(feeds[i].Title, feeds[j].Title) < 0
		})

		items := make([]string, 0, len(feeds))
		for _, feed := range feeds {
			items = append(items,
				markdown.Bold(markdown.Link(feed.Title, feed.Homepage))+
					" — <sub>"+markdown.Link("RSS", feed.RSS)+"</sub>")
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	md.Blockquote(markdown.Italic("Generated automatically from the original OPML file."))
	return md.Build()
}

// categories returns the category names in lexicographic order.
func (c *Collection) categories() []string {
	names := make([]string, 0, len(c.byCategory))
	for name := range c.byCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
