package extract

import (
	"regexp"

	"github.com/comicrawl/comicrawl/dom"
	"github.com/comicrawl/comicrawl/util"
)

// selectOne returns the first match of selector inside n.
func selectOne(n dom.Node, row int, field, selector string) (dom.Element, error) {
	element, ok := n.SelectOne(selector).Get()
	if !ok {
		return nil, &RowError{Row: row, Field: field, Reason: ReasonMissingElement, Detail: selector}
	}
	return element, nil
}

// attr returns the named attribute of the first match of selector inside n.
func attr(n dom.Node, row int, field, selector, name string) (string, error) {
	element, err := selectOne(n, row, field, selector)
	if err != nil {
		return "", err
	}

	value, ok := element.Attr(name).Get()
	if !ok {
		return "", &RowError{Row: row, Field: field, Reason: ReasonMissingAttribute, Detail: name}
	}
	return value, nil
}

// text returns the stripped text of the first match of selector inside n.
func text(n dom.Node, row int, field, selector string) (string, error) {
	element, err := selectOne(n, row, field, selector)
	if err != nil {
		return "", err
	}
	return element.Text(true), nil
}

// group returns the named capture group of pattern in s.
func group(pattern *regexp.Regexp, name, s string, row int, field string) (string, error) {
	value, ok := util.ReGroups(pattern, s)[name]
	if !ok || value == "" {
		return "", &RowError{Row: row, Field: field, Reason: ReasonPatternMismatch, Detail: s}
	}
	return value, nil
}
