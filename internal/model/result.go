package model

import "time"

// Adjustment records one deduction that was actually applied during
// adjudication, with a human-readable reason. Steps that did not apply are
// omitted from the result, not recorded as zero.
type Adjustment struct {
	Label  string
	Amount float64
	Reason string
}

// AdjudicationResult is the insurer/patient split computed for one request.
// Computed fresh per request from Policy + BillFacts and never persisted by
// the engine itself.
type AdjudicationResult struct {
	InsurerPaysBest float64
	InsurerPaysLow  float64
	InsurerPaysHigh float64
	// HasRange is false when low and high round to the same 2-decimal value;
	// callers then report only the best estimate.
	HasRange bool

	// PatientPays is nil when the total bill amount could not be extracted.
	PatientPays *float64

	RoomStatus      RoomStatus
	ExtraRoomCost   *float64
	RoomRentPayable *float64

	Subtotal        float64
	NonPayableTotal float64

	// MissingTerms names subtotal components that were unresolved and
	// contributed zero (never silently the full bill).
	MissingTerms []string

	Adjustments []Adjustment
}

// TimelineMode discriminates the three timeline outcomes.
type TimelineMode string

const (
	TimelineHoursRemaining   TimelineMode = "hours_remaining"
	TimelineCompletionPassed TimelineMode = "completion_passed"
	TimelineUnavailable      TimelineMode = "unavailable"
)

// TimelineResult is the expected claim-completion estimate.
type TimelineResult struct {
	Mode           TimelineMode
	HoursRemaining *int
	CompletionAt   *time.Time
}
