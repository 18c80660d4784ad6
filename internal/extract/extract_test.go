package extract

import (
	"testing"
	"time"
)

func TestExtract_TotalGrandTotalWins(t *testing.T) {
	text := "Room: 1000\nGrand Total: 12345.00 INR"
	facts := New(nil).Extract(text)
	if facts.TotalBill == nil || *facts.TotalBill != 12345.00 {
		t.Errorf("total = %v, want 12345.00", facts.TotalBill)
	}
}

func TestExtract_TotalPriorityOrder(t *testing.T) {
	// "net payable" outranks "grand total" regardless of line position
	text := "Grand Total: 99999\nNet Payable: 45000"
	facts := New(nil).Extract(text)
	if facts.TotalBill == nil || *facts.TotalBill != 45000 {
		t.Errorf("total = %v, want 45000 from net payable", facts.TotalBill)
	}
}

func TestExtract_LaterTotalOverridesEarlier(t *testing.T) {
	text := "Total: 10000\nsome items\nTotal: 12000"
	facts := New(nil).Extract(text)
	if facts.TotalBill == nil || *facts.TotalBill != 12000 {
		t.Errorf("total = %v, want the later 12000", facts.TotalBill)
	}
}

func TestExtract_TotalTakesLastNumberOnLine(t *testing.T) {
	text := "Total (18 items): 54321.50"
	facts := New(nil).Extract(text)
	if facts.TotalBill == nil || *facts.TotalBill != 54321.50 {
		t.Errorf("total = %v, want 54321.50", facts.TotalBill)
	}
}

func TestExtract_NonPayables(t *testing.T) {
	text := "consumables 500\nregistration_fee 300"
	facts := New([]string{"consumables", "registration_fee"}).Extract(text)

	if got := facts.NonPayableTotal(); got != 800.0 {
		t.Errorf("non-payable total = %v, want 800.0", got)
	}
	if len(facts.NonPayables) != 2 {
		t.Fatalf("items = %d, want 2", len(facts.NonPayables))
	}
	if facts.NonPayables[0].Label != "consumables" || facts.NonPayables[0].Amount != 500.0 {
		t.Errorf("first item = %+v", facts.NonPayables[0])
	}
	if facts.NonPayables[1].Label != "registration_fee" || facts.NonPayables[1].Amount != 300.0 {
		t.Errorf("second item = %+v", facts.NonPayables[1])
	}
}

func TestExtract_NonPayablesKeywordOrderNotTextOrder(t *testing.T) {
	text := "registration_fee 300\nconsumables 500"
	facts := New([]string{"consumables", "registration_fee"}).Extract(text)
	if facts.NonPayables[0].Label != "consumables" {
		t.Errorf("items must follow keyword iteration order, got %+v", facts.NonPayables)
	}
}

func TestExtract_NonPayableKeywordMatchesMultipleLines(t *testing.T) {
	text := "consumables 200\nsurgical consumables 300"
	facts := New([]string{"consumables"}).Extract(text)
	if len(facts.NonPayables) != 2 {
		t.Fatalf("items = %d, want both matches kept", len(facts.NonPayables))
	}
	if got := facts.NonPayableTotal(); got != 500 {
		t.Errorf("total = %v, want 500", got)
	}
}

func TestExtract_RoomTypeNormalization(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Room: General Ward", "shared"},
		{"ward charges 500", "shared"},
		{"Room Type: Single Room", "single_private"},
		{"stayed in a private room", "single_private"},
		{"Room: Deluxe Suite", "unknown"},
		// both families present: the more specific wins
		{"shifted from general ward to private room", "single_private"},
	}
	for _, tc := range cases {
		facts := New(nil).Extract(tc.text)
		if string(facts.Room.BilledType) != tc.want {
			t.Errorf("%q: room type = %s, want %s", tc.text, facts.Room.BilledType, tc.want)
		}
	}
}

func TestExtract_RoomRateAndDays(t *testing.T) {
	cases := []struct {
		text     string
		wantRate float64
		wantDays int
	}{
		{"Room Rent: 4000 per day for 5 days", 4000, 5},
		{"Room charges @ 3500/day, 3 days", 3500, 3},
		{"Room Rent 5000 x 4", 5000, 4},
	}
	for _, tc := range cases {
		facts := New(nil).Extract(tc.text)
		if facts.Room.RatePerDay == nil || *facts.Room.RatePerDay != tc.wantRate {
			t.Errorf("%q: rate = %v, want %v", tc.text, facts.Room.RatePerDay, tc.wantRate)
		}
		if facts.Room.Days == nil || *facts.Room.Days != tc.wantDays {
			t.Errorf("%q: days = %v, want %v", tc.text, facts.Room.Days, tc.wantDays)
		}
	}
}

func TestExtract_RoomRateUnresolved(t *testing.T) {
	facts := New(nil).Extract("Room: General Ward")
	if facts.Room.RatePerDay != nil || facts.Room.Days != nil {
		t.Error("rate and days must stay unresolved without numbers")
	}
}

func TestExtract_DischargeDateDefaultsTo0900(t *testing.T) {
	facts := New(nil).Extract("Discharge Date: 2025-01-10")
	want := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	if facts.DischargeAt == nil || !facts.DischargeAt.Equal(want) {
		t.Errorf("discharge = %v, want %v", facts.DischargeAt, want)
	}
}

func TestExtract_DischargeDateWithTime(t *testing.T) {
	facts := New(nil).Extract("Discharge: 10/01/2025 14:30")
	want := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)
	if facts.DischargeAt == nil || !facts.DischargeAt.Equal(want) {
		t.Errorf("discharge = %v, want %v", facts.DischargeAt, want)
	}
}

func TestExtract_DischargeUnresolved(t *testing.T) {
	facts := New(nil).Extract("Discharge summary attached separately")
	if facts.DischargeAt != nil {
		t.Errorf("discharge = %v, want unresolved", facts.DischargeAt)
	}
}

func TestExtract_PatientName(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Patient Name: Ramesh Kumar", "Ramesh Kumar"},
		{"Name: Anita Sharma\nPatient Name: Ignored Second", "Anita Sharma"},
		{"Admitted Mr. Ramesh Kumar on Monday", "Mr. Ramesh Kumar on Monday"},
	}
	for _, tc := range cases {
		facts := New(nil).Extract(tc.text)
		if facts.PatientName == nil || *facts.PatientName != tc.want {
			t.Errorf("%q: name = %v, want %q", tc.text, facts.PatientName, tc.want)
		}
	}
}

func TestExtract_PatientNameUnresolved(t *testing.T) {
	facts := New(nil).Extract("Total: 500")
	if facts.PatientName != nil {
		t.Errorf("name = %v, want unresolved", facts.PatientName)
	}
}

func TestExtract_Categories(t *testing.T) {
	text := "Medicines 8000\nNursing charges 2500\nImplants 40000\nConsultation 1500"
	facts := New(nil).Extract(text)

	var fixed, other float64
	for _, it := range facts.FixedItems {
		fixed += it.Amount
	}
	for _, it := range facts.OtherCharges {
		other += it.Amount
	}
	if fixed != 48000 {
		t.Errorf("fixed items total = %v, want 48000", fixed)
	}
	if other != 4000 {
		t.Errorf("other charges total = %v, want 4000", other)
	}
}

func TestExtract_NonPayableLineNotDoubleCounted(t *testing.T) {
	// "consumables" is both a policy non-payable and a fixed-item keyword;
	// the non-payable scan claims the line first.
	facts := New([]string{"consumables"}).Extract("Consumables 700")
	if len(facts.NonPayables) != 1 {
		t.Fatalf("non-payables = %d, want 1", len(facts.NonPayables))
	}
	if len(facts.FixedItems) != 0 {
		t.Errorf("fixed items = %+v, want line claimed by non-payables", facts.FixedItems)
	}
}

func TestExtract_MalformedInputNeverPanics(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "££££ 🤷", "Total:"} {
		facts := New([]string{"consumables"}).Extract(text)
		if facts.TotalBill != nil {
			t.Errorf("%q: total = %v, want unresolved", text, facts.TotalBill)
		}
	}
}
