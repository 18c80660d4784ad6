// Package extract parses raw hospital-bill text into structured billing facts.
//
// Extraction is best-effort by contract: it never fails on malformed input,
// and every fact that cannot be resolved is simply left unset. Precedence
// rules below resolve ambiguity deterministically, so the same text always
// yields the same facts.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gyeh/claimsight/internal/model"
	"github.com/gyeh/claimsight/internal/normalize"
)

// Total-amount line patterns in priority order. Later statements override
// earlier ones (corrected totals), so within a pattern the last occurrence
// in the text wins.
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bnet\s*payable\b`),
	regexp.MustCompile(`(?i)\bamount\s*payable\b`),
	regexp.MustCompile(`(?i)\bgrand\s*total\b`),
	regexp.MustCompile(`(?i)\btotal\b`),
}

var (
	sharedTokens  = []string{"shared", "general ward", "general", "ward"}
	privateTokens = []string{"single room", "private room", "single", "private"}

	roomLine    = regexp.MustCompile(`(?i)\b(room|rent|bed|ward)\b`)
	daysToken   = regexp.MustCompile(`(?i)\b(\d+)\s*days?\b`)
	rateToken   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d{1,2})?)\s*(?:/|per\s*)day\b`)
	atRateToken = regexp.MustCompile(`@\s*(\d+(?:\.\d{1,2})?)`)
	multToken   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d{1,2})?)\s*[x×]\s*(\d+)\b`)

	dischargeLine = regexp.MustCompile(`(?i)\bdischarge\b`)
	patientLabel  = regexp.MustCompile(`(?i)\bpatient\s*name\b`)
	nameLabel     = regexp.MustCompile(`(?i)\bname\b`)
	honorific     = regexp.MustCompile(`\b(?:Mr|Ms|Mrs)\.?\s+\S`)
)

// Extractor turns raw bill text into BillFacts. Non-payable keywords come
// from the policy; the category tables are fixed.
type Extractor struct {
	nonPayableKeywords []string
}

// New returns an Extractor scanning for the given non-payable keywords.
func New(nonPayableKeywords []string) *Extractor {
	return &Extractor{nonPayableKeywords: nonPayableKeywords}
}

// Extract parses text into a structured fact set. It never returns an error:
// unresolved fields stay unset and callers degrade to "Not available".
func (e *Extractor) Extract(text string) model.BillFacts {
	lines := strings.Split(text, "\n")

	facts := model.BillFacts{
		TotalBill:   parseTotal(lines),
		PatientName: parsePatientName(lines),
		DischargeAt: parseDischarge(lines),
	}
	facts.Room = parseRoom(text, lines)

	// Non-payables claim their lines first so a keyword like "consumables"
	// is not double-counted as a fixed item.
	claimed := make(map[int]bool)
	facts.NonPayables = scanKeywords(lines, e.nonPayableKeywords, claimed, true)
	facts.FixedItems = scanKeywords(lines, fixedItemKeywords, claimed, false)
	facts.OtherCharges = scanKeywords(lines, otherChargeKeywords, claimed, false)

	return facts
}

// parseTotal searches patterns in priority order; among lines matching a
// pattern the last occurrence wins, and the amount is the last numeric token
// on that line.
func parseTotal(lines []string) *float64 {
	for _, pat := range totalPatterns {
		for i := len(lines) - 1; i >= 0; i-- {
			if !pat.MatchString(lines[i]) {
				continue
			}
			if v := normalize.LastAmount(lines[i]); v != nil {
				return v
			}
		}
	}
	return nil
}

// scanKeywords collects one line item per (keyword, matching line) pair.
// Items follow keyword iteration order, not text order. Lines already in
// claimed are skipped; matched lines are added to claimed when claim is true.
func scanKeywords(lines []string, keywords []string, claimed map[int]bool, claim bool) []model.LineItem {
	var items []model.LineItem
	for _, kw := range keywords {
		pat, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			continue
		}
		for i, ln := range lines {
			if claimed[i] || !pat.MatchString(ln) {
				continue
			}
			v := normalize.LastAmount(ln)
			if v == nil {
				continue
			}
			items = append(items, model.LineItem{Label: kw, Amount: *v})
			if claim {
				claimed[i] = true
			}
		}
	}
	return items
}

// parseRoom resolves the billed room category plus, where stated, the per-day
// rate and the number of days.
func parseRoom(text string, lines []string) model.RoomFacts {
	facts := model.RoomFacts{BilledType: normalizeRoomType(text)}

	for _, ln := range lines {
		if !roomLine.MatchString(ln) {
			continue
		}
		if facts.Days == nil {
			if m := daysToken.FindStringSubmatch(ln); m != nil {
				if d, err := strconv.Atoi(m[1]); err == nil {
					facts.Days = &d
				}
			}
		}
		if facts.RatePerDay == nil {
			if m := rateToken.FindStringSubmatch(ln); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					facts.RatePerDay = &v
				}
			} else if m := atRateToken.FindStringSubmatch(ln); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					facts.RatePerDay = &v
				}
			}
		}
		// "5000 x 4" style: rate times day count on one line.
		if facts.RatePerDay == nil || facts.Days == nil {
			if m := multToken.FindStringSubmatch(ln); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil && facts.RatePerDay == nil {
					facts.RatePerDay = &v
				}
				if d, err := strconv.Atoi(m[2]); err == nil && facts.Days == nil {
					facts.Days = &d
				}
			}
		}
		if facts.RatePerDay != nil && facts.Days != nil {
			break
		}
	}
	return facts
}

// normalizeRoomType maps room vocabulary to a category by case-insensitive
// substring match. When both token families appear, the more specific
// single_private wins.
func normalizeRoomType(text string) model.RoomType {
	lower := strings.ToLower(text)
	for _, tok := range privateTokens {
		if strings.Contains(lower, tok) {
			return model.RoomSinglePrivate
		}
	}
	for _, tok := range sharedTokens {
		if strings.Contains(lower, tok) {
			return model.RoomShared
		}
	}
	return model.RoomUnknown
}

// parseDischarge finds the first "discharge" line with a parseable date.
// A time on the same line is honored; otherwise the default is 09:00.
func parseDischarge(lines []string) *time.Time {
	for _, ln := range lines {
		if !dischargeLine.MatchString(ln) {
			continue
		}
		d := normalize.FindDate(ln)
		if d == nil {
			continue
		}
		hour, minute := 9, 0
		if h, m, ok := normalize.FindClockTime(ln); ok {
			hour, minute = h, m
		}
		t := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
		return &t
	}
	return nil
}

// parsePatientName looks for a "Patient Name"/"Name" label or an Mr/Ms
// honorific; first match wins.
func parsePatientName(lines []string) *string {
	for _, ln := range lines {
		if loc := patientLabel.FindStringIndex(ln); loc != nil {
			if name := normalize.CleanName(ln[loc[1]:]); name != nil {
				return name
			}
			continue
		}
		if loc := nameLabel.FindStringIndex(ln); loc != nil {
			if name := normalize.CleanName(ln[loc[1]:]); name != nil {
				return name
			}
			continue
		}
		if loc := honorific.FindStringIndex(ln); loc != nil {
			if name := normalize.CleanName(ln[loc[0]:]); name != nil {
				return name
			}
		}
	}
	return nil
}
