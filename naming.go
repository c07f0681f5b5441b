package tagmatch

import (
	"strings"
	"unicode"
)

// combinedPrefix marks the name of every combined dispatcher.
const combinedPrefix = "match"

// SnakeCase returns the lower-cased, underscore-separated form of an
// identifier. A word boundary is placed before an upper-case letter that
// follows a lower-case letter or digit, and before the last upper-case letter
// of an acronym run that is followed by a lower-case letter, so that
// "TimeFrame" becomes "time_frame" and "HTTPMode" becomes "http_mode".
// Existing underscores are kept and never doubled.
func SnakeCase(ident string) string {
	rs := []rune(ident)
	var b strings.Builder
	b.Grow(len(ident) + 4)
	for i, r := range rs {
		if unicode.IsUpper(r) && i > 0 && rs[i-1] != '_' {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// DispatcherName returns the name under which the single-tag dispatcher for
// the named enumeration is expected to be defined.
func DispatcherName(enum string) string {
	return SnakeCase(enum)
}

// CombinedName returns the name of the combined dispatcher generated for the
// given ordered enumeration names.
func CombinedName(enums ...string) string {
	parts := make([]string, 0, len(enums)+1)
	parts = append(parts, combinedPrefix)
	for _, e := range enums {
		parts = append(parts, SnakeCase(e))
	}
	return strings.Join(parts, "_")
}

// tagVar names the switch-local that holds a dispatched tag value. Placeholders
// are distinct within one expansion, so nested switches never shadow each other.
func tagVar(placeholder string) string {
	return "tagmatch" + placeholder
}
