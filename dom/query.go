package dom

import (
	"github.com/antchfx/htmlquery"
	"github.com/grovetools/navbar/errors"
)

// QueryAll evaluates an XPath expression against the subtree rooted at el and
// returns the matching elements in document order.
func QueryAll(el *Element, expr string) ([]*Element, error) {
	nodes, err := htmlquery.QueryAll(el.node, expr)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid xpath expression").
			WithDetail("expr", expr)
	}

	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if match := el.doc.ElementFor(n); match != nil {
			out = append(out, match)
		}
	}
	return out, nil
}

// Query returns the first element matching expr under el.
func Query(el *Element, expr string) (*Element, error) {
	matches, err := QueryAll(el, expr)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.ElementNotFound(expr)
	}
	return matches[0], nil
}
