// Package sanitize cleans operator-supplied HTML fragments before they are
// stored for the public site.
//
// Visitor input (questions, contact messages) is plain text and is stored as
// submitted, trimmed only; it must not go through these helpers, since the
// HTML parser treats text such as "x<y and y>z" as markup.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var ugc = bluemonday.UGCPolicy()

// HTML keeps formatting markup and links and drops scripts, styles, event
// handler attributes and unsafe URLs.
func HTML(s string) string {
	return ugc.Sanitize(s)
}

// Document applies HTML to every string in doc, descending into nested maps
// and lists. Keys are left untouched. A new value is returned; doc is not
// modified.
func Document(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = value(v)
	}
	return out
}

func value(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return HTML(t)
	case map[string]interface{}:
		return Document(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, el := range t {
			out[i] = value(el)
		}
		return out
	}
	return v
}
