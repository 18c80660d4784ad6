package model

// RoomPolicy describes the room entitlement of a plan.
type RoomPolicy struct {
	Type                   RoomType `json:"type" yaml:"type"`
	CapPerDay              *float64 `json:"cap_per_day" yaml:"cap_per_day"`
	ProportionateDeduction bool     `json:"proportionate_deduction" yaml:"proportionate_deduction"`
}

// Policy holds the coverage rules for one insurer/plan combination.
// It is read-only for the lifetime of a request; the engine never mutates it.
// Nullable numeric fields follow the pointer convention: nil means the policy
// does not state a value.
type Policy struct {
	Room               RoomPolicy `json:"room" yaml:"room"`
	CoPayPct           *float64   `json:"co_pay_pct" yaml:"co_pay_pct"`
	SumInsured         *float64   `json:"sum_insured" yaml:"sum_insured"`
	ApprovalTime       string     `json:"approval_time" yaml:"approval_time"`
	NonPayableKeywords []string   `json:"non_payable_keywords" yaml:"non_payable_keywords"`
}

// RoomCapPerDay returns the room cap, treating negative values as unset.
// Malformed policies degrade to unresolved fields rather than failing.
func (p *Policy) RoomCapPerDay() *float64 {
	if p.Room.CapPerDay == nil || *p.Room.CapPerDay < 0 {
		return nil
	}
	return p.Room.CapPerDay
}

// SumInsuredLimit returns the sum insured ceiling, treating negative values as unset.
func (p *Policy) SumInsuredLimit() *float64 {
	if p.SumInsured == nil || *p.SumInsured < 0 {
		return nil
	}
	return p.SumInsured
}
