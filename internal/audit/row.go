package audit

import "time"

// Row is the flattened audit record of one adjudicated request, shaped for
// both the estimates table and Parquet export. Nullable money fields stay
// pointers so "unknown" survives the round trip.
type Row struct {
	RequestID      string  `parquet:"request_id"`
	ConversationID *string `parquet:"conversation_id,optional"`
	Insurer        string  `parquet:"insurer"`
	Plan           string  `parquet:"plan"`
	Intent         string  `parquet:"intent"`
	RoomStatus     string  `parquet:"room_status"`

	InsurerPaysBest float64  `parquet:"insurer_pays_best"`
	InsurerPaysLow  float64  `parquet:"insurer_pays_low"`
	InsurerPaysHigh float64  `parquet:"insurer_pays_high"`
	HasRange        bool     `parquet:"has_range"`
	PatientPays     *float64 `parquet:"patient_pays,optional"`
	TotalBill       *float64 `parquet:"total_bill,optional"`
	NonPayableTotal float64  `parquet:"non_payable_total"`

	BillSHA256 string    `parquet:"bill_sha256"`
	AskedAt    time.Time `parquet:"asked_at,timestamp"`
}
