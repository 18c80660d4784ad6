package policy

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const samplePolicyJSON = `{
  "HDFC ERGO": {
    "SILVER": {
      "room": {"type": "shared", "cap_per_day": 2000, "proportionate_deduction": true},
      "co_pay_pct": 10,
      "sum_insured": 300000,
      "approval_time": "2 business days",
      "non_payable_keywords": ["consumables", "registration_fee"]
    },
    "GOLD": {
      "room": {"type": "any_room", "proportionate_deduction": false},
      "sum_insured": 1000000,
      "approval_time": "4 hours"
    }
  },
  "Star Health": {
    "BASIC": {
      "room": {"type": "single_private", "cap_per_day": 5000, "proportionate_deduction": false},
      "approval_time": "3 days"
    }
  }
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.json")
	if err := os.WriteFile(path, []byte(samplePolicyJSON), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_Insurers(t *testing.T) {
	store, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"HDFC ERGO", "Star Health"}
	if got := store.Insurers(); !reflect.DeepEqual(got, want) {
		t.Errorf("insurers = %v, want %v", got, want)
	}
}

func TestLoad_Plans(t *testing.T) {
	store, _ := Load(writeSample(t))
	want := []string{"GOLD", "SILVER"}
	if got := store.Plans("HDFC ERGO"); !reflect.DeepEqual(got, want) {
		t.Errorf("plans = %v, want %v", got, want)
	}
	if got := store.Plans("hdfc ergo"); got != nil {
		t.Errorf("lookup must be case-sensitive, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	store, _ := Load(writeSample(t))

	p, err := store.Lookup("HDFC ERGO", "SILVER")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if p.Room.CapPerDay == nil || *p.Room.CapPerDay != 2000 {
		t.Errorf("cap = %v, want 2000", p.Room.CapPerDay)
	}
	if p.CoPayPct == nil || *p.CoPayPct != 10 {
		t.Errorf("co-pay = %v, want 10", p.CoPayPct)
	}
	if len(p.NonPayableKeywords) != 2 {
		t.Errorf("keywords = %v", p.NonPayableKeywords)
	}

	if _, err := store.Lookup("HDFC ERGO", "PLATINUM"); err == nil {
		t.Error("expected error for unknown plan")
	}
	if _, err := store.Lookup("Nobody", "SILVER"); err == nil {
		t.Error("expected error for unknown insurer")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("/nonexistent/policy.json"); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("not json"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
