package intent

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want Kind
	}{
		{"hi", Greeting},
		{"Hello!", Greeting},
		{"thank you", Greeting},
		{"good morning", Greeting},

		{"can you write python code for me", OutOfContext},
		{"what's the cricket score", OutOfContext},
		{"share a recipe for pasta", OutOfContext},

		{"what are my room charges", RoomAnalysis},
		{"is my ward covered", RoomAnalysis},
		{"tell me about the room rent cap", RoomAnalysis},
		{"I stayed in a private room, what happens", RoomAnalysis},

		{"when will my claim be approved", Timeline},
		{"what is the TAT", Timeline},
		{"claim status please", Timeline},
		{"what is the approval time", Timeline},

		{"give me the full breakdown", Breakdown},
		{"please itemize the bill", Breakdown},
		{"show details", Breakdown},

		{"how much will insurance cover", CoverageEstimate},
		{"what will I pay", CoverageEstimate},
		{"estimate my approval amount", CoverageEstimate},

		{"explain my policy document", Other},
		{"", Other},
	}
	for _, tc := range cases {
		if got := Classify(tc.text); got.Kind != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.text, got.Kind, tc.want)
		}
	}
}

func TestClassify_SpecificValueFields(t *testing.T) {
	cases := []struct {
		text string
		want Field
	}{
		{"what is my total bill", FieldTotalBill},
		{"what is the bill amount", FieldTotalBill},
		{"what is the copay", FieldCoPay},
		{"what's my co-pay percentage", FieldCoPay},
		{"what is the sum insured", FieldSumInsured},
		{"what is my deductible", FieldDeductible},
	}
	for _, tc := range cases {
		got := Classify(tc.text)
		if got.Kind != SpecificValue {
			t.Errorf("Classify(%q).Kind = %s, want specific_value", tc.text, got.Kind)
			continue
		}
		if got.Field != tc.want {
			t.Errorf("Classify(%q).Field = %s, want %s", tc.text, got.Field, tc.want)
		}
	}
}

func TestClassify_PrecedenceOverScoring(t *testing.T) {
	// Mentions room, timeline and breakdown vocabulary; room wins by order.
	got := Classify("give me a breakdown of room charges and when the claim completes")
	if got.Kind != RoomAnalysis {
		t.Errorf("kind = %s, want room_analysis by precedence", got.Kind)
	}
}

func TestClassify_GreetingNeedsNoOtherSignal(t *testing.T) {
	// A greeting followed by a real question is not a pure greeting.
	got := Classify("hi, how much will insurance cover")
	if got.Kind != CoverageEstimate {
		t.Errorf("kind = %s, want coverage_estimate", got.Kind)
	}
}
