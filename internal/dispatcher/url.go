package dispatcher

import (
	"net/url"
	"strings"
)

// DefaultFlag is the query key that requests pre-population.
const DefaultFlag = "pre-populate"

// RouteKey returns the final non-empty segment of path, or "" when the path
// has none.
func RouteKey(path string) string {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

// Requested reports whether rawQuery carries flag. Only presence matters:
// "flag", "flag=" and "flag=false" all request pre-population. Malformed
// pairs elsewhere in the query do not hide a well-formed flag.
func Requested(rawQuery, flag string) bool {
	if flag == "" {
		return false
	}
	values, _ := url.ParseQuery(rawQuery)
	_, ok := values[flag]
	return ok
}
