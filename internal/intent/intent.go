// Package intent maps a free-text patient question to one discrete intent.
//
// Classification is pure keyword matching evaluated in a fixed precedence
// order; ambiguous questions resolve by that order, never by scoring.
package intent

import (
	"regexp"
	"strings"
)

// Kind is the discrete intent category of a user question.
type Kind string

const (
	Greeting         Kind = "greeting"
	CoverageEstimate Kind = "coverage_estimate"
	Timeline         Kind = "timeline"
	RoomAnalysis     Kind = "room_analysis"
	SpecificValue    Kind = "specific_value"
	Breakdown        Kind = "breakdown"
	Other            Kind = "other"
	OutOfContext     Kind = "out_of_context"
)

// Field names the single value a specific_value question asks about.
type Field string

const (
	FieldNone       Field = ""
	FieldTotalBill  Field = "total_bill"
	FieldCoPay      Field = "co_pay"
	FieldSumInsured Field = "sum_insured"
	FieldDeductible Field = "deductible"
)

// Intent is the classification result. Field is set only for SpecificValue.
type Intent struct {
	Kind  Kind
	Field Field
}

var greetingWords = []string{
	"hi", "hello", "hey", "thanks", "thank", "you", "good",
	"morning", "afternoon", "evening", "namaste", "ok", "okay", "bye",
}

var outOfContextWords = []string{
	"code", "coding", "program", "python", "javascript", "recipe", "cook",
	"cooking", "cricket", "football", "sports", "news", "weather", "movie",
	"song", "stock", "stocks", "election",
}

var roomWords = []string{
	"room", "rent", "charges", "cap", "bed", "ward", "sharing", "single", "private",
}

var timelineWords = []string{
	"when", "tat", "turnaround", "timeframe", "approval time", "claim status",
	"how long", "processing time",
}

var breakdownWords = []string{
	"breakdown", "break down", "split up", "itemize", "itemise", "details",
	"full analysis",
}

var coverageWords = []string{
	"cover", "coverage", "estimate", "approval", "payable", "pay", "how much",
}

// specificValuePhrases map question vocabulary to the field asked about.
// Order matters: the first matching phrase decides the field.
var specificValuePhrases = []struct {
	phrase string
	field  Field
}{
	{"total bill", FieldTotalBill},
	{"bill amount", FieldTotalBill},
	{"copay", FieldCoPay},
	{"co-pay", FieldCoPay},
	{"co pay", FieldCoPay},
	{"copayment", FieldCoPay},
	{"sum insured", FieldSumInsured},
	{"deductible", FieldDeductible},
}

var wordSplit = regexp.MustCompile(`[^a-z]+`)

// Classify maps user text to an intent. Deterministic, case-insensitive,
// first match in precedence order wins; anything else in-domain lands in
// Other rather than failing.
func Classify(text string) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Intent{Kind: Other}
	}

	// A pure greeting has no other signal: every word is greeting vocabulary.
	if isPureGreeting(lower) {
		return Intent{Kind: Greeting}
	}

	if containsAnyWord(lower, outOfContextWords) {
		return Intent{Kind: OutOfContext}
	}
	if containsAnyWord(lower, roomWords) {
		return Intent{Kind: RoomAnalysis}
	}
	if matchesAny(lower, timelineWords) {
		return Intent{Kind: Timeline}
	}
	if matchesAny(lower, breakdownWords) {
		return Intent{Kind: Breakdown}
	}
	for _, sv := range specificValuePhrases {
		if strings.Contains(lower, sv.phrase) {
			return Intent{Kind: SpecificValue, Field: sv.field}
		}
	}
	if matchesAny(lower, coverageWords) {
		return Intent{Kind: CoverageEstimate}
	}
	return Intent{Kind: Other}
}

func isPureGreeting(lower string) bool {
	words := wordSplit.Split(lower, -1)
	sawGreeting := false
	for _, w := range words {
		if w == "" {
			continue
		}
		found := false
		for _, g := range greetingWords {
			if w == g {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		sawGreeting = true
	}
	return sawGreeting
}

// containsAnyWord does whole-word matching so short tokens like "cap" or
// "when" don't fire inside longer words.
func containsAnyWord(lower string, words []string) bool {
	for _, w := range wordSplit.Split(lower, -1) {
		for _, target := range words {
			if w == target {
				return true
			}
		}
	}
	return false
}

// matchesAny mixes whole-word matching for single tokens with substring
// matching for multiword phrases.
func matchesAny(lower string, targets []string) bool {
	for _, target := range targets {
		if strings.ContainsRune(target, ' ') {
			if strings.Contains(lower, target) {
				return true
			}
			continue
		}
		if containsAnyWord(lower, []string{target}) {
			return true
		}
	}
	return false
}
