package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one stored question/answer exchange.
type ChatMessage struct {
	ID         uuid.UUID `json:"id"`
	AnalysisID uuid.UUID `json:"analysis_id,omitempty"`
	Provider   string    `json:"provider"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatRepo stores chat exchanges, optionally linked to a stored analysis.
type ChatRepo struct{}

func NewChatRepo() *ChatRepo {
	return &ChatRepo{}
}

// Save persists one exchange.
func (r *ChatRepo) Save(ctx context.Context, m *ChatMessage) (uuid.UUID, error) {
	pool := GetPool()
	if pool == nil {
		return uuid.Nil, fmt.Errorf("database pool not initialized")
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	var analysisID interface{}
	if m.AnalysisID != uuid.Nil {
		analysisID = m.AnalysisID
	}

	query := `
		INSERT INTO chat_messages (id, analysis_id, provider, question, answer, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`
	if _, err := pool.Exec(ctx, query, m.ID, analysisID, m.Provider, m.Question, m.Answer); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save chat message: %w", err)
	}
	return m.ID, nil
}

// ForAnalysis lists the exchanges linked to one analysis, oldest first.
func (r *ChatRepo) ForAnalysis(ctx context.Context, analysisID uuid.UUID) ([]ChatMessage, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT id, analysis_id, provider, question, answer, created_at
		FROM chat_messages
		WHERE analysis_id = $1
		ORDER BY created_at ASC
	`
	rows, err := pool.Query(ctx, query, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	var results []ChatMessage
	for rows.Next() {
		var m ChatMessage
		var aid *uuid.UUID
		if err := rows.Scan(&m.ID, &aid, &m.Provider, &m.Question, &m.Answer, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat row: %w", err)
		}
		if aid != nil {
			m.AnalysisID = *aid
		}
		results = append(results, m)
	}
	return results, rows.Err()
}
