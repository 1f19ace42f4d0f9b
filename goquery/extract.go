// Package goquery implements scout.Extractor by selecting the article
// element of a page with goquery and flattening it to text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scout"
)

// Ensure TextExtractor implements scout.Extractor at compile time.
var _ scout.Extractor = (*TextExtractor)(nil)

// contentSelectors locate the article body, most specific first.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".entry-content",
	".post-content",
	".article-body",
	".content",
	"#content",
}

// noiseSelectors are removed before any text is read.
const noiseSelectors = `script, style, noscript, template, iframe, svg, nav, header, footer, aside, form, [role="navigation"], [aria-hidden="true"]`

// blockSelectors are the elements whose text becomes a line of output.
const blockSelectors = "h1, h2, h3, h4, h5, h6, p, li, dt, dd, blockquote, figcaption, td, th, pre"

// TextExtractor extracts the readable text of a page without any scoring
// heuristics. It is the cheapest of the extractors and works well on
// simple list articles.
type TextExtractor struct {
	selectors []string
}

// NewTextExtractor creates a new TextExtractor. Additional content selectors
// are tried before the built-in ones.
func NewTextExtractor(selectors ...string) *TextExtractor {
	return &TextExtractor{
		selectors: append(append([]string{}, selectors...), contentSelectors...),
	}
}

// Extract returns the title, the HTML of the content root, and its text
// with one line per block element.
func (e *TextExtractor) Extract(html string) (*scout.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, scout.Errorf(scout.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scout.Errorf(scout.EINVALID, "failed to parse HTML: %v", err)
	}

	title := pageTitle(doc)
	doc.Find(noiseSelectors).Remove()

	root := e.contentRoot(doc)
	contentHTML, err := goquery.OuterHtml(root)
	if err != nil {
		return nil, err
	}

	return &scout.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		Text:        blockText(root),
	}, nil
}

// contentRoot returns the first selector match that carries text, or body.
func (e *TextExtractor) contentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && strings.TrimSpace(sel.Text()) != "" {
			return sel
		}
	}
	return doc.Find("body").First()
}

func pageTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// blockText joins the text of block elements line by line. A block that
// holds other blocks contributes only its own text, such as a list item's
// bold heading above a description paragraph, so nothing is repeated.
func blockText(root *goquery.Selection) string {
	var lines []string
	root.Find(blockSelectors).Each(func(_ int, sel *goquery.Selection) {
		if line := collapseSpace(ownText(sel)); line != "" {
			lines = append(lines, line)
		}
	})
	if len(lines) == 0 {
		return collapseSpace(root.Text())
	}
	return strings.Join(lines, "\n")
}

// ownText returns the text of sel without the text of nested blocks.
func ownText(sel *goquery.Selection) string {
	if sel.Find(blockSelectors).Length() == 0 {
		return sel.Text()
	}
	own := sel.Clone()
	own.Find(blockSelectors).Remove()
	return own.Text()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
