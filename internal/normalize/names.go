package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// CleanName collapses whitespace and strips label punctuation from a patient
// name fragment. Returns nil if nothing usable remains.
func CleanName(s string) *string {
	s = strings.Trim(s, " \t:.-")
	s = multiSpace.ReplaceAllString(s, " ")
	if s == "" {
		return nil
	}
	return &s
}
