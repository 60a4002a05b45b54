package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer removes markup from user supplied text.
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

const maxStripPasses = 4

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// StripHTML drops every tag and trims the result. Entities escaped by the
// policy are decoded again so "Fish & Chips" is stored as typed; decoding
// repeats until the text is stable so encoded markup cannot come back as tags.
func (hs *HTMLStripper) StripHTML(s string) string {
	out := s
	for pass := 0; pass < maxStripPasses; pass++ {
		next := html.UnescapeString(hs.bm.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	return strings.TrimSpace(angleBrackets.Replace(out))
}
