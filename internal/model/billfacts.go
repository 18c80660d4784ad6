package model

import "time"

// LineItem is one labeled monetary amount pulled from the bill text.
// The same label may occur more than once when a keyword matches several lines.
type LineItem struct {
	Label  string
	Amount float64
}

// SumItems returns the total of a line-item slice.
func SumItems(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// RoomFacts describes the room usage as billed.
type RoomFacts struct {
	BilledType RoomType
	RatePerDay *float64
	Days       *int
}

// BillFacts is the structured fact set extracted from raw bill text.
// It is immutable once extracted; any field may be unresolved (nil pointer,
// RoomUnknown, empty slice), and downstream computations must tolerate that
// rather than guessing.
type BillFacts struct {
	PatientName  *string
	TotalBill    *float64
	Room         RoomFacts
	FixedItems   []LineItem
	OtherCharges []LineItem
	NonPayables  []LineItem
	DischargeAt  *time.Time
}

// NonPayableTotal sums all non-payable line items.
func (f *BillFacts) NonPayableTotal() float64 {
	return SumItems(f.NonPayables)
}
