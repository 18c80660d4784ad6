// Package assist runs the full question-answering pipeline:
// extract → classify → adjudicate → timeline → compose.
package assist

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimsight/internal/compose"
	"github.com/gyeh/claimsight/internal/engine"
	"github.com/gyeh/claimsight/internal/extract"
	"github.com/gyeh/claimsight/internal/intent"
	"github.com/gyeh/claimsight/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Answer is the full structured outcome of one request. Everything the
// composer trimmed away stays available here for auditing.
type Answer struct {
	RequestID    uuid.UUID
	Intent       intent.Intent
	Facts        model.BillFacts
	Adjudication model.AdjudicationResult
	Timeline     model.TimelineResult
	Response     compose.Response
}

// Service ties the pipeline together. It holds no mutable state and is safe
// for concurrent use across requests.
type Service struct {
	log zerolog.Logger
}

// New returns a Service logging pipeline phases to log.
func New(log zerolog.Logger) *Service {
	return &Service{log: log}
}

// Answer runs the pipeline for one (policy, bill text, question) triple.
// now is threaded through to the timeline estimator so results stay
// deterministic; neither policy nor the extracted facts are mutated.
func (s *Service) Answer(p model.Policy, billText, userText string, now time.Time) *Answer {
	requestID := uuid.New()
	log := s.log.With().Str("request_id", requestID.String()).Logger()

	facts := extract.New(p.NonPayableKeywords).Extract(billText)
	log.Debug().
		Bool("total_found", facts.TotalBill != nil).
		Str("room_type", string(facts.Room.BilledType)).
		Int("non_payables", len(facts.NonPayables)).
		Msg("bill facts extracted")

	it := intent.Classify(userText)
	log.Debug().Str("intent", string(it.Kind)).Str("field", string(it.Field)).Msg("intent classified")

	adj := engine.Adjudicate(p, facts)
	tl := engine.EstimateTimeline(p, facts, now)
	log.Info().
		Str("intent", string(it.Kind)).
		Str("room_status", string(adj.RoomStatus)).
		Float64("insurer_pays_best", adj.InsurerPaysBest).
		Str("timeline_mode", string(tl.Mode)).
		Msg("request adjudicated")

	return &Answer{
		RequestID:    requestID,
		Intent:       it,
		Facts:        facts,
		Adjudication: adj,
		Timeline:     tl,
		Response:     compose.Compose(it, p, facts, adj, tl),
	}
}
