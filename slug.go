package trending

import (
	"regexp"
	"strings"
)

var slugSeparatorRe = regexp.MustCompile(`\s*/\s*`)

// NormalizeSlug canonicalizes a repository identifier by trimming surrounding
// whitespace and collapsing any whitespace around the "/" separator, so that
// "owner / repo" and " owner/repo " both become "owner/repo".
//
// The function is total: any input is accepted and transformed. It does not
// check that a separator is present; callers that require one must verify it
// themselves.
func NormalizeSlug(s string) string {
	return slugSeparatorRe.ReplaceAllString(strings.TrimSpace(s), "/")
}
