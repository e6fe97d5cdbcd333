// Package escape provides the percent-encoding collaborator for query
// strings. Both transforms are pure string functions: no state, no
// configuration.
package escape

import (
	"net/url"
	"strings"
)

// Form escapes s per application/x-www-form-urlencoded: reserved characters
// are percent-encoded and spaces become '+'.
func Form(s string) string {
	return url.QueryEscape(s)
}

// Query escapes s per the RFC 3986 query component: identical to Form
// except spaces become "%20". The post-replacement is safe because a
// literal '+' has already been encoded as "%2B" at that point.
func Query(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
