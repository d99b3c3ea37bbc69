// Package report turns casual survey observations into professional
// assessment findings and drafts whole-report text from a survey's
// notes: a fixed, ordered battery of topic rules, each matching a regex
// signature in the lowered text and emitting formatted finding strings.
package report

import (
	"regexp"
	"strconv"
)

// firstInt returns the first integer captured by re in text. All rules
// that need "the number near keyword X" share this: only the first
// match is considered, and a capture that fails to parse as an integer
// means no signal rather than an error.
func firstInt(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	for _, group := range m[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
