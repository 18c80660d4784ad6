package normalize

import (
	"regexp"
	"strings"
	"time"
)

// Date shapes commonly seen on hospital bills and discharge summaries.
// Slash and dash numeric dates are read day-first (Indian convention).
var datePatterns = []struct {
	re      *regexp.Regexp
	layouts []string
}{
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), []string{"2006-01-02"}},
	{regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`), []string{"02/01/2006", "2/1/2006"}},
	{regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`), []string{"02-01-2006", "2-1-2006"}},
	{regexp.MustCompile(`\d{1,2}\s+[A-Za-z]{3,9},?\s+\d{4}`), []string{"2 Jan 2006", "2 January 2006", "2 Jan, 2006"}},
	{regexp.MustCompile(`[A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4}`), []string{"Jan 2, 2006", "January 2, 2006", "Jan 2 2006"}},
}

var timeToken = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*([AaPp][Mm])?\b`)

// FindDate locates the first recognizable date inside a line of text.
// Returns nil if nothing parses.
func FindDate(line string) *time.Time {
	for _, dp := range datePatterns {
		match := dp.re.FindString(line)
		if match == "" {
			continue
		}
		for _, layout := range dp.layouts {
			if t, err := time.Parse(layout, match); err == nil {
				return &t
			}
		}
	}
	return nil
}

// FindClockTime locates the first HH:MM token (with optional am/pm) in a line.
// ok is false when no time is present.
func FindClockTime(line string) (hour, minute int, ok bool) {
	m := timeToken.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	h := atoiSafe(m[1])
	min := atoiSafe(m[2])
	if h > 23 || min > 59 {
		return 0, 0, false
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if h < 12 {
			h += 12
		}
	case "am":
		if h == 12 {
			h = 0
		}
	}
	return h, min, true
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
