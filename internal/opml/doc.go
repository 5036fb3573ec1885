// Package opml converts OPML subscription lists into Markdown.
//
// Parse reads an OPML document and collects every feed leaf (an outline
// carrying an xmlUrl attribute), grouped by the folder it sits in. Render
// writes the collection as a "starter pack" Markdown document: one H3
// section per category, one bullet per feed with its homepage and RSS
// links.
//
// Nested folders are flattened to their innermost name; feeds outside any
// folder land in the "Misc" category.
package opml
