package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleRows() []Row {
	convID := "7b9d7f2e-9a1c-4f7e-8f59-3f4a2e6d1c0b"
	patient := 6800.0
	total := 29800.0
	return []Row{
		{
			RequestID:       "1d4a0c6e-0b1f-4f2a-9f7d-8a2c5e3b9d10",
			ConversationID:  &convID,
			Insurer:         "HDFC ERGO",
			Plan:            "SILVER",
			Intent:          "coverage_estimate",
			RoomStatus:      "over_limit",
			InsurerPaysBest: 23000,
			InsurerPaysLow:  20700,
			InsurerPaysHigh: 24150,
			HasRange:        true,
			PatientPays:     &patient,
			TotalBill:       &total,
			NonPayableTotal: 600,
			BillSHA256:      "ab12",
			AskedAt:         time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			RequestID:       "5e8b1f3a-6c2d-4e9f-b0a7-1d3c5f7e9a2b",
			Insurer:         "Star Health",
			Plan:            "BASIC",
			Intent:          "timeline",
			RoomStatus:      "unknown",
			InsurerPaysBest: 0,
			BillSHA256:      "cd34",
			AskedAt:         time.Date(2025, 2, 1, 12, 30, 0, 0, time.UTC),
		},
	}
}

func TestParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimates.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	rows := sampleRows()
	if err := WriteParquet(f, rows); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("rows = %d, want %d", len(got), len(rows))
	}

	first := got[0]
	if first.RequestID != rows[0].RequestID {
		t.Errorf("request id = %q", first.RequestID)
	}
	if first.ConversationID == nil || *first.ConversationID != *rows[0].ConversationID {
		t.Errorf("conversation id = %v", first.ConversationID)
	}
	if first.InsurerPaysBest != 23000 || !first.HasRange {
		t.Errorf("money fields = %+v", first)
	}
	if first.PatientPays == nil || *first.PatientPays != 6800 {
		t.Errorf("patient pays = %v", first.PatientPays)
	}
	if !first.AskedAt.Equal(rows[0].AskedAt) {
		t.Errorf("asked at = %v", first.AskedAt)
	}

	second := got[1]
	if second.ConversationID != nil {
		t.Errorf("nil conversation id did not survive, got %v", second.ConversationID)
	}
	if second.PatientPays != nil || second.TotalBill != nil {
		t.Error("nil money fields did not survive")
	}
}

func TestWriteParquet_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := WriteParquet(f, nil); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}
	f.Close()

	got, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("rows = %d, want 0", len(got))
	}
}
