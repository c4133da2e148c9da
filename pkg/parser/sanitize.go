package parser

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips any markup from authored text such as section titles
// and descriptions. Titles feed accessibility labels, so they must come out
// as plain text no matter what the document contains. The sanitizer escapes
// entities on the way through, so its output is unescaped again: "Q&A" must
// survive as "Q&A", not "Q&amp;A".
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(plainTextPolicy().Sanitize(trimmed)))
}

func plainTextPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
