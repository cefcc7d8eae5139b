package render

import (
	"strings"

	"golang.org/x/net/html"
)

// region is a byte range [start, end) of the document
type region struct {
	start, end int
}

// findInner locates the content between the open tag of the element with the
// given id and its matching close tag. Nested elements of the same tag name
// are tracked by depth so previously rendered fragments are spanned whole.
func findInner(doc, id string) (region, bool) {
	z := html.NewTokenizer(strings.NewReader(doc))
	offset := 0
	depth := 0
	var tag string
	var inner region

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return region{}, false
		}
		raw := len(z.Raw())
		tokenStart := offset
		offset += raw

		switch tt {
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if depth > 0 {
				if string(name) == tag {
					depth++
				}
				continue
			}
			if hasAttr && hasID(z, id) {
				tag = string(name)
				depth = 1
				inner.start = offset
			}
		case html.EndTagToken:
			if depth == 0 {
				continue
			}
			name, _ := z.TagName()
			if string(name) != tag {
				continue
			}
			depth--
			if depth == 0 {
				inner.end = tokenStart
				return inner, true
			}
		}
	}
}

func hasID(z *html.Tokenizer, id string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "id" && string(val) == id {
			return true
		}
		if !more {
			return false
		}
	}
}

// replaceInner swaps the content of the element with the given id
func replaceInner(doc, id, content string) (string, bool) {
	r, ok := findInner(doc, id)
	if !ok {
		return doc, false
	}
	var b strings.Builder
	b.Grow(len(doc) - (r.end - r.start) + len(content))
	b.WriteString(doc[:r.start])
	b.WriteString(content)
	b.WriteString(doc[r.end:])
	return b.String(), true
}
