// Package sanitize holds the bluemonday policies applied to caller-supplied
// markup before it is composed into an annotated page.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// Fragment sanitises an HTML fragment destined for a page section or
// context block. Standard text markup survives, along with the microdata
// and GEO data attributes the enhancers rely on; scripts, event handlers
// and unknown embeds are stripped.
func Fragment(raw string) string {
	return strings.TrimSpace(fragmentSanitizer().Sanitize(raw))
}

// Strict strips all markup, leaving plain text.
func Strict(raw string) string {
	return strings.TrimSpace(bluemonday.StrictPolicy().Sanitize(raw))
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("section", "article", "cite", "span", "figure", "figcaption")

		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("id").Globally()
		policy.AllowAttrs("lang").Globally()

		// Microdata vocabulary.
		policy.AllowAttrs("itemscope", "itemtype", "itemprop", "itemid").Globally()

		// GEO annotation attributes.
		policy.AllowAttrs("data-definition").OnElements("span")
		policy.AllowAttrs("data-citation-id").OnElements("span")
		policy.AllowAttrs("data-chunk-id").OnElements("div")

		fragmentPolicy = policy
	})
	return fragmentPolicy
}
