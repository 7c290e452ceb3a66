// Package dom wraps goquery behind the small query surface the extractor needs.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"
)

// Node is anything that can be queried with CSS selectors.
type Node interface {
	// SelectOne returns the first match of selector, if any.
	SelectOne(selector string) mo.Option[Element]
	// Select returns every match of selector in document order.
	Select(selector string) []Element
}

// Document is a parsed page.
type Document interface {
	Node
}

// Element is a single matched node.
type Element interface {
	Node
	// Attr returns the named attribute, if present.
	Attr(name string) mo.Option[string]
	// Text returns the element's text content, trimmed of surrounding whitespace when strip is set.
	Text(strip bool) string
}

// Parse builds a queryable document from raw markup.
func Parse(text string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return &node{sel: doc.Selection}, nil
}

type node struct {
	sel *goquery.Selection
}

func (n *node) SelectOne(selector string) mo.Option[Element] {
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return mo.None[Element]()
	}
	return mo.Some[Element](&node{sel: found})
}

func (n *node) Select(selector string) []Element {
	var elements []Element
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &node{sel: s})
	})
	return elements
}

func (n *node) Attr(name string) mo.Option[string] {
	value, ok := n.sel.Attr(name)
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(value)
}

func (n *node) Text(strip bool) string {
	if strip {
		return strings.TrimSpace(n.sel.Text())
	}
	return n.sel.Text()
}
