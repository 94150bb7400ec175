package routing

import (
	"regexp"
	"strings"
	"sync"
)

var patternCache sync.Map

// Is reports whether value matches pattern, where '*' matches any run of
// characters (including '/'). Patterns without '*' require an exact match.
func Is(pattern, value string) bool {
	if pattern == value {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	return compile(pattern).MatchString(value)
}

func compile(pattern string) *regexp.Regexp {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	quoted := regexp.QuoteMeta(pattern)
	re := regexp.MustCompile(`^` + strings.ReplaceAll(quoted, `\*`, `.*`) + `\z`)
	patternCache.Store(pattern, re)
	return re
}

// HasPathPrefixOnBoundary reports whether path starts with prefix and the
// prefix ends on a path segment boundary.
func HasPathPrefixOnBoundary(path, prefix string) bool {
	if prefix == "" {
		return false
	}

	if prefix == "/" {
		return strings.HasPrefix(path, "/")
	}

	if !strings.HasPrefix(path, prefix) {
		return false
	}

	if len(path) == len(prefix) {
		return true
	}

	if strings.HasSuffix(prefix, "/") {
		return true
	}

	return path[len(prefix)] == '/'
}
