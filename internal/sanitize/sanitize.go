// Package sanitize cleans backend-authored post bodies before they are
// rendered as rich HTML. The policy is an allowlist: tags and attributes
// not explicitly permitted are stripped, rather than pattern-matching known
// dangerous constructs.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	// UGCPolicy permits the formatting a post body legitimately uses:
	// paragraphs, headings, lists, emphasis, links, images, blockquotes.
	// Script tags and event-handler attributes are not in the allowlist
	// and cannot survive.
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "div", "span", "ul", "ol", "li")
	return p
}

// PostBody sanitizes one post body. Safe to call on untrusted input.
func PostBody(html string) string {
	return policy.Sanitize(html)
}
