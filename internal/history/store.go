// Package history persists conversations, their messages, and estimate audit
// rows in Postgres. The adjudication engine itself never touches storage;
// recording is owned by the surrounding service layer.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/claimsight/internal/audit"
	"github.com/gyeh/claimsight/internal/normalize"
	embedsql "github.com/gyeh/claimsight/internal/sql"
)

// Conversation is one insurer/plan/bill session.
type Conversation struct {
	ID         uuid.UUID
	Insurer    string
	Plan       string
	BillText   *string
	BillSHA256 string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Message is one turn in a conversation. Role is "user" or "assistant".
type Message struct {
	ID             int64
	ConversationID uuid.UUID
	Role           string
	Content        string
	CreatedAt      time.Time
}

// Store wraps a pgx pool with the history queries.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CreateConversation starts a new session. The bill text hash is computed
// here so identical bills are recognizable across sessions.
func (s *Store) CreateConversation(ctx context.Context, insurer, plan string, billText *string) (*Conversation, error) {
	sha := ""
	if billText != nil {
		sha = normalize.TextHash(*billText)
	}
	var c Conversation
	err := s.pool.QueryRow(ctx, embedsql.InsertConversation,
		uuid.New(), insurer, plan, billText, sha,
	).Scan(&c.ID, &c.Insurer, &c.Plan, &c.BillText, &c.BillSHA256, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert conversation: %w", err)
	}
	return &c, nil
}

// GetConversation fetches one session by id.
func (s *Store) GetConversation(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	var c Conversation
	err := s.pool.QueryRow(ctx, embedsql.GetConversation, id).
		Scan(&c.ID, &c.Insurer, &c.Plan, &c.BillText, &c.BillSHA256, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// ListConversations returns all sessions in creation order.
func (s *Store) ListConversations(ctx context.Context) ([]Conversation, error) {
	rows, err := s.pool.Query(ctx, embedsql.ListConversations)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var out []Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.Insurer, &c.Plan, &c.BillText, &c.BillSHA256, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AppendMessage adds one turn and touches the conversation's updated_at.
func (s *Store) AppendMessage(ctx context.Context, conversationID uuid.UUID, role, content string) (*Message, error) {
	var m Message
	err := s.pool.QueryRow(ctx, embedsql.InsertMessage, conversationID, role, content).
		Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return &m, nil
}

// Messages returns a conversation's turns in insertion order.
func (s *Store) Messages(ctx context.Context, conversationID uuid.UUID) ([]Message, error) {
	rows, err := s.pool.Query(ctx, embedsql.ListMessages, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// RecordEstimate stores one audit row.
func (s *Store) RecordEstimate(ctx context.Context, row *audit.Row) error {
	_, err := s.pool.Exec(ctx, embedsql.InsertEstimate,
		row.RequestID, row.ConversationID, row.Insurer, row.Plan,
		row.Intent, row.RoomStatus,
		row.InsurerPaysBest, row.InsurerPaysLow, row.InsurerPaysHigh, row.HasRange,
		row.PatientPays, row.TotalBill, row.NonPayableTotal,
		row.BillSHA256, row.AskedAt,
	)
	if err != nil {
		return fmt.Errorf("insert estimate: %w", err)
	}
	return nil
}

// Estimates returns all audit rows ordered by request time.
func (s *Store) Estimates(ctx context.Context) ([]audit.Row, error) {
	rows, err := s.pool.Query(ctx, embedsql.ListEstimates)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()

	var out []audit.Row
	for rows.Next() {
		var r audit.Row
		if err := rows.Scan(&r.RequestID, &r.ConversationID, &r.Insurer, &r.Plan,
			&r.Intent, &r.RoomStatus,
			&r.InsurerPaysBest, &r.InsurerPaysLow, &r.InsurerPaysHigh, &r.HasRange,
			&r.PatientPays, &r.TotalBill, &r.NonPayableTotal,
			&r.BillSHA256, &r.AskedAt); err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
