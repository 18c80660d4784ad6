// Package engine applies policy rules to extracted billing facts.
//
// Both entry points are pure functions of their inputs: no clock, no I/O, no
// shared state. Missing inputs degrade to unresolved outputs instead of
// errors, and unresolved subtotal terms contribute zero while being flagged.
package engine

import (
	"fmt"
	"math"

	"github.com/gyeh/claimsight/internal/model"
	"github.com/gyeh/claimsight/internal/normalize"
)

// Adjudicate computes the insurer/patient split for one request.
// Arithmetic stays at full float precision; rounding to currency subunits
// happens only at output and for the range-collapse comparison.
func Adjudicate(policy model.Policy, facts model.BillFacts) model.AdjudicationResult {
	res := model.AdjudicationResult{}

	rate := facts.Room.RatePerDay
	cap := policy.RoomCapPerDay()
	days := facts.Room.Days

	// Room rent payable and the excess the patient absorbs, both only when
	// rate, cap and days are all resolved.
	if rate != nil && cap != nil && days != nil {
		payable := math.Min(*rate, *cap) * float64(*days)
		extra := math.Max(0, *rate-*cap) * float64(*days)
		res.RoomRentPayable = &payable
		res.ExtraRoomCost = &extra
	}

	res.RoomStatus = roomStatus(policy, facts, rate, cap)

	// Proportionate deduction ratio. Applies only with the policy flag set,
	// the room over limit, and both rates resolved; otherwise the full amount
	// is used rather than a guessed ratio.
	ratio := 1.0
	if policy.Room.ProportionateDeduction && res.RoomStatus == model.RoomOverLimit &&
		rate != nil && cap != nil && *rate > 0 {
		ratio = math.Min(1, *cap / *rate)
	}

	otherTotal := model.SumItems(facts.OtherCharges)
	otherPayable := ratio * otherTotal
	fixedPayable := model.SumItems(facts.FixedItems)

	res.Subtotal = otherPayable + fixedPayable
	if res.RoomRentPayable != nil {
		res.Subtotal += *res.RoomRentPayable
	} else {
		res.MissingTerms = append(res.MissingTerms, "room_rent_payable")
	}

	best := res.Subtotal
	var coPayAmount float64
	if policy.CoPayPct != nil && *policy.CoPayPct > 0 {
		coPayAmount = best * *policy.CoPayPct / 100
		best -= coPayAmount
	}

	sumInsured := policy.SumInsuredLimit()
	capped := sumInsured != nil && best > *sumInsured
	preCap := best
	if capped {
		best = *sumInsured
	}

	res.InsurerPaysBest = best
	res.InsurerPaysLow = best * 0.90
	res.InsurerPaysHigh = best * 1.05
	res.HasRange = normalize.Round2(res.InsurerPaysLow) != normalize.Round2(res.InsurerPaysHigh)

	res.NonPayableTotal = facts.NonPayableTotal()
	if facts.TotalBill != nil {
		patient := *facts.TotalBill - best + res.NonPayableTotal
		if res.ExtraRoomCost != nil {
			patient += *res.ExtraRoomCost
		}
		res.PatientPays = &patient
	}

	res.Adjustments = adjustments(policy, res, rate, cap, ratio, otherTotal, coPayAmount, preCap, capped, sumInsured)
	return res
}

func roomStatus(policy model.Policy, facts model.BillFacts, rate, cap *float64) model.RoomStatus {
	over := false
	known := true

	if rate != nil && cap != nil {
		if *rate > *cap {
			over = true
		}
	} else {
		known = false
	}

	billedRank, billedOK := facts.Room.BilledType.Rank()
	eligibleRank, eligibleOK := policy.Room.Type.Rank()
	if billedOK && eligibleOK {
		if billedRank > eligibleRank {
			over = true
		}
	} else {
		known = false
	}

	switch {
	case over:
		return model.RoomOverLimit
	case known:
		return model.RoomWithinCap
	default:
		return model.RoomStatusUnknown
	}
}

// adjustments lists every deduction that actually applied, in computation
// order. Steps that did not apply are omitted rather than zero-valued.
func adjustments(policy model.Policy, res model.AdjudicationResult, rate, cap *float64,
	ratio, otherTotal, coPayAmount, preCap float64, capped bool, sumInsured *float64) []model.Adjustment {

	var adj []model.Adjustment

	if res.ExtraRoomCost != nil && *res.ExtraRoomCost > 0 {
		adj = append(adj, model.Adjustment{
			Label:  "Room category cap",
			Amount: *res.ExtraRoomCost,
			Reason: fmt.Sprintf("billed %s/day exceeds policy cap of %s/day",
				normalize.FormatINR(*rate), normalize.FormatINR(*cap)),
		})
	}

	if ratio < 1 {
		adj = append(adj, model.Adjustment{
			Label:  "Proportionate deduction",
			Amount: (1 - ratio) * otherTotal,
			Reason: fmt.Sprintf("other charges reduced by %.0f%% due to room category mismatch", (1-ratio)*100),
		})
	}

	if coPayAmount > 0 {
		adj = append(adj, model.Adjustment{
			Label:  "Co-payment",
			Amount: coPayAmount,
			Reason: fmt.Sprintf("you pay %.0f%% of eligible expenses as per policy terms", *policy.CoPayPct),
		})
	}

	if res.NonPayableTotal > 0 {
		adj = append(adj, model.Adjustment{
			Label:  "Non-payable items",
			Amount: res.NonPayableTotal,
			Reason: "items not covered by your policy",
		})
	}

	if capped {
		adj = append(adj, model.Adjustment{
			Label:  "Sum insured cap",
			Amount: preCap - *sumInsured,
			Reason: fmt.Sprintf("claim capped at the policy's sum insured limit of %s", normalize.FormatINR(*sumInsured)),
		})
	}

	return adj
}
