// Package slug converts club names into URL path segments.
package slug

import (
	"strings"
)

// Make converts a club name to its base slug: lowercased, every
// maximal run of non-alphanumeric characters collapsed to a single
// hyphen, leading and trailing hyphens stripped. An all-punctuation
// name yields the empty string; callers are expected to fall back to
// a timestamped slug in that case.
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			if b.Len() > 0 {
				pendingHyphen = true
			}
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
