package assist

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gyeh/claimsight/internal/audit"
	"github.com/gyeh/claimsight/internal/history"
	"github.com/gyeh/claimsight/internal/normalize"
)

// Record persists one exchange: the conversation, both message turns, and the
// flattened estimate audit row. Errors are phase-tagged so callers can tell
// which write failed.
func (s *Service) Record(ctx context.Context, store *history.Store,
	insurer, plan, billText, userText string, ans *Answer, askedAt time.Time) (*history.Conversation, error) {

	conv, err := store.CreateConversation(ctx, insurer, plan, &billText)
	if err != nil {
		return nil, &PipelineError{Phase: "conversation", Err: err}
	}

	if _, err := store.AppendMessage(ctx, conv.ID, "user", userText); err != nil {
		return nil, &PipelineError{Phase: "message", Err: err}
	}

	reply, err := json.Marshal(ans.Response)
	if err != nil {
		return nil, &PipelineError{Phase: "message", Err: err}
	}
	if _, err := store.AppendMessage(ctx, conv.ID, "assistant", string(reply)); err != nil {
		return nil, &PipelineError{Phase: "message", Err: err}
	}

	row := auditRow(insurer, plan, billText, ans, askedAt)
	convID := conv.ID.String()
	row.ConversationID = &convID
	if err := store.RecordEstimate(ctx, row); err != nil {
		return nil, &PipelineError{Phase: "audit", Err: err}
	}

	s.log.Info().Str("conversation_id", conv.ID.String()).Msg("exchange recorded")
	return conv, nil
}

func auditRow(insurer, plan, billText string, ans *Answer, askedAt time.Time) *audit.Row {
	return &audit.Row{
		RequestID:       ans.RequestID.String(),
		Insurer:         insurer,
		Plan:            plan,
		Intent:          string(ans.Intent.Kind),
		RoomStatus:      string(ans.Adjudication.RoomStatus),
		InsurerPaysBest: ans.Adjudication.InsurerPaysBest,
		InsurerPaysLow:  ans.Adjudication.InsurerPaysLow,
		InsurerPaysHigh: ans.Adjudication.InsurerPaysHigh,
		HasRange:        ans.Adjudication.HasRange,
		PatientPays:     ans.Adjudication.PatientPays,
		TotalBill:       ans.Facts.TotalBill,
		NonPayableTotal: ans.Adjudication.NonPayableTotal,
		BillSHA256:      normalize.TextHash(billText),
		AskedAt:         askedAt,
	}
}
