// Package compose projects engine results into fixed per-intent views.
//
// Composition is purely a projection: it selects and formats fields, never
// computes. Every money value renders with two decimals and unresolved
// fields render the literal "Not available" marker so consumers can tell
// zero from unknown.
package compose

import (
	"fmt"
	"strconv"

	"github.com/gyeh/claimsight/internal/intent"
	"github.com/gyeh/claimsight/internal/model"
	"github.com/gyeh/claimsight/internal/normalize"
)

// NotAvailable is the marker for any field that could not be resolved.
const NotAvailable = "Not available"

const (
	estimateDisclaimer  = "Final approval depends on insurer's assessment. This is an estimate based on policy rules."
	outOfContextMessage = "This is an out-of-context question."
	dateLayout          = "02 Jan 2006 at 15:04"
)

// Response is the structured result the owning service renders into its wire
// format. Exactly one view is populated, matching Kind.
type Response struct {
	Kind      intent.Kind        `json:"kind"`
	Greeting  *GreetingView      `json:"greeting,omitempty"`
	Coverage  *CoverageView      `json:"coverage,omitempty"`
	Timeline  *TimelineView      `json:"timeline,omitempty"`
	Room      *RoomAnalysisView  `json:"room,omitempty"`
	Value     *SpecificValueView `json:"value,omitempty"`
	Breakdown *BreakdownView     `json:"breakdown,omitempty"`
	Note      string             `json:"note,omitempty"`
}

// GreetingView carries what a greeting reply needs: the patient name.
type GreetingView struct {
	PatientName string `json:"patient_name"`
}

// AdjustmentView is one applied deduction, formatted.
type AdjustmentView struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

// ItemView is one formatted bill line item.
type ItemView struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// CoverageView is the coverage-estimation layout.
type CoverageView struct {
	TotalBill    string           `json:"total_bill"`
	BestEstimate string           `json:"best_estimate"`
	EstimateLow  string           `json:"estimate_low"`
	EstimateHigh string           `json:"estimate_high"`
	HasRange     bool             `json:"has_range"`
	PatientPays  string           `json:"patient_pays"`
	Adjustments  []AdjustmentView `json:"adjustments"`
	Note         string           `json:"note"`
}

// TimelineView is the claim-timeline layout.
type TimelineView struct {
	Mode           model.TimelineMode `json:"mode"`
	HoursRemaining string             `json:"hours_remaining"`
	CompletionAt   string             `json:"completion_at"`
}

// RoomAnalysisView is the room-coverage layout.
type RoomAnalysisView struct {
	EligibleRoom  string           `json:"eligible_room"`
	CapPerDay     string           `json:"cap_per_day"`
	BilledRoom    string           `json:"billed_room"`
	RatePerDay    string           `json:"rate_per_day"`
	Days          string           `json:"days"`
	Status        model.RoomStatus `json:"status"`
	ExtraRoomCost string           `json:"extra_room_cost"`
	PolicyEffect  string           `json:"policy_effect"`
}

// SpecificValueView answers a single-value question with exactly one figure.
type SpecificValueView struct {
	Field intent.Field `json:"field"`
	Label string       `json:"label"`
	Value string       `json:"value"`
}

// BreakdownView is the full-analysis layout.
type BreakdownView struct {
	Coverage     CoverageView     `json:"coverage"`
	Room         RoomAnalysisView `json:"room"`
	Timeline     TimelineView     `json:"timeline"`
	FixedItems   []ItemView       `json:"fixed_items"`
	OtherCharges []ItemView       `json:"other_charges"`
	NonPayables  []ItemView       `json:"non_payables"`
}

// Compose selects and formats the view matching the classified intent.
func Compose(it intent.Intent, policy model.Policy, facts model.BillFacts,
	adj model.AdjudicationResult, tl model.TimelineResult) Response {

	switch it.Kind {
	case intent.Greeting:
		return Response{Kind: it.Kind, Greeting: &GreetingView{PatientName: strOrNA(facts.PatientName)}}
	case intent.CoverageEstimate:
		v := coverageView(facts, adj)
		return Response{Kind: it.Kind, Coverage: &v}
	case intent.Timeline:
		v := timelineView(tl)
		return Response{Kind: it.Kind, Timeline: &v}
	case intent.RoomAnalysis:
		v := roomView(policy, facts, adj)
		return Response{Kind: it.Kind, Room: &v}
	case intent.SpecificValue:
		v := valueView(it.Field, policy, facts)
		return Response{Kind: it.Kind, Value: &v}
	case intent.Breakdown:
		v := BreakdownView{
			Coverage:     coverageView(facts, adj),
			Room:         roomView(policy, facts, adj),
			Timeline:     timelineView(tl),
			FixedItems:   itemViews(facts.FixedItems),
			OtherCharges: itemViews(facts.OtherCharges),
			NonPayables:  itemViews(facts.NonPayables),
		}
		return Response{Kind: it.Kind, Breakdown: &v}
	case intent.OutOfContext:
		return Response{Kind: it.Kind, Note: outOfContextMessage}
	default:
		return Response{Kind: intent.Other}
	}
}

func coverageView(facts model.BillFacts, adj model.AdjudicationResult) CoverageView {
	views := make([]AdjustmentView, 0, len(adj.Adjustments))
	for _, a := range adj.Adjustments {
		views = append(views, AdjustmentView{Label: a.Label, Amount: money(&a.Amount), Reason: a.Reason})
	}
	return CoverageView{
		TotalBill:    money(facts.TotalBill),
		BestEstimate: money(&adj.InsurerPaysBest),
		EstimateLow:  money(&adj.InsurerPaysLow),
		EstimateHigh: money(&adj.InsurerPaysHigh),
		HasRange:     adj.HasRange,
		PatientPays:  money(adj.PatientPays),
		Adjustments:  views,
		Note:         estimateDisclaimer,
	}
}

func timelineView(tl model.TimelineResult) TimelineView {
	v := TimelineView{
		Mode:           tl.Mode,
		HoursRemaining: NotAvailable,
		CompletionAt:   NotAvailable,
	}
	if tl.HoursRemaining != nil {
		v.HoursRemaining = strconv.Itoa(*tl.HoursRemaining)
	}
	if tl.CompletionAt != nil {
		v.CompletionAt = tl.CompletionAt.Format(dateLayout)
	}
	return v
}

func roomView(policy model.Policy, facts model.BillFacts, adj model.AdjudicationResult) RoomAnalysisView {
	effect := "No proportionate deduction"
	if policy.Room.ProportionateDeduction && adj.RoomStatus == model.RoomOverLimit {
		effect = "Proportionate deduction applies"
	}
	return RoomAnalysisView{
		EligibleRoom:  roomType(policy.Room.Type),
		CapPerDay:     money(policy.RoomCapPerDay()),
		BilledRoom:    roomType(facts.Room.BilledType),
		RatePerDay:    money(facts.Room.RatePerDay),
		Days:          intOrNA(facts.Room.Days),
		Status:        adj.RoomStatus,
		ExtraRoomCost: money(adj.ExtraRoomCost),
		PolicyEffect:  effect,
	}
}

func valueView(field intent.Field, policy model.Policy, facts model.BillFacts) SpecificValueView {
	v := SpecificValueView{Field: field, Value: NotAvailable}
	switch field {
	case intent.FieldTotalBill:
		v.Label = "Total bill amount"
		v.Value = money(facts.TotalBill)
	case intent.FieldCoPay:
		v.Label = "Co-pay"
		if policy.CoPayPct != nil {
			v.Value = fmt.Sprintf("%.0f%%", *policy.CoPayPct)
		}
	case intent.FieldSumInsured:
		v.Label = "Sum insured"
		v.Value = money(policy.SumInsuredLimit())
	case intent.FieldDeductible:
		v.Label = "Deductible"
	}
	return v
}

func itemViews(items []model.LineItem) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, ItemView{Label: it.Label, Amount: money(&it.Amount)})
	}
	return views
}

func roomType(r model.RoomType) string {
	if r == "" || r == model.RoomUnknown {
		return NotAvailable
	}
	return string(r)
}

func money(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return "₹" + normalize.FormatINR(*v)
}

func strOrNA(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return *s
}

func intOrNA(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.Itoa(*v)
}
