package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"findoc_analyst/pkg/core/docanalyzer"
)

// DocumentAnalysis is one stored analysis run.
type DocumentAnalysis struct {
	ID           uuid.UUID                `json:"id"`
	Filename     string                   `json:"filename"`
	DocumentType docanalyzer.DocumentType `json:"document_type"`
	PageCount    int                      `json:"page_count"`
	Metrics      docanalyzer.MetricSet    `json:"metrics"`
	Ratios       docanalyzer.RatioSet     `json:"ratios"`
	Dates        []string                 `json:"dates"`
	CreatedAt    time.Time                `json:"created_at"`
}

// AnalysisRepo stores and lists document analyses.
type AnalysisRepo struct{}

func NewAnalysisRepo() *AnalysisRepo {
	return &AnalysisRepo{}
}

// Save persists one analysis run and returns its generated ID.
func (r *AnalysisRepo) Save(ctx context.Context, a *DocumentAnalysis) (uuid.UUID, error) {
	pool := GetPool()
	if pool == nil {
		return uuid.Nil, fmt.Errorf("database pool not initialized")
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	metricsJSON, err := json.Marshal(a.Metrics)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal metrics: %w", err)
	}
	ratiosJSON, err := json.Marshal(a.Ratios)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal ratios: %w", err)
	}

	query := `
		INSERT INTO document_analyses (id, filename, document_type, page_count, metrics, ratios, dates, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`
	_, err = pool.Exec(ctx, query, a.ID, a.Filename, string(a.DocumentType), a.PageCount,
		metricsJSON, ratiosJSON, a.Dates)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return a.ID, nil
}

// Recent lists the most recent analyses, newest first.
func (r *AnalysisRepo) Recent(ctx context.Context, limit int) ([]DocumentAnalysis, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, filename, document_type, page_count, metrics, ratios, dates, created_at
		FROM document_analyses
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var results []DocumentAnalysis
	for rows.Next() {
		var (
			a           DocumentAnalysis
			docType     string
			metricsJSON []byte
			ratiosJSON  []byte
		)
		if err := rows.Scan(&a.ID, &a.Filename, &docType, &a.PageCount,
			&metricsJSON, &ratiosJSON, &a.Dates, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		a.DocumentType = docanalyzer.DocumentType(docType)
		if len(metricsJSON) > 0 {
			if err := json.Unmarshal(metricsJSON, &a.Metrics); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metrics: %w", err)
			}
		}
		if len(ratiosJSON) > 0 {
			if err := json.Unmarshal(ratiosJSON, &a.Ratios); err != nil {
				return nil, fmt.Errorf("failed to unmarshal ratios: %w", err)
			}
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// Get loads a single analysis by ID.
func (r *AnalysisRepo) Get(ctx context.Context, id uuid.UUID) (*DocumentAnalysis, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT id, filename, document_type, page_count, metrics, ratios, dates, created_at
		FROM document_analyses
		WHERE id = $1
	`
	var (
		a           DocumentAnalysis
		docType     string
		metricsJSON []byte
		ratiosJSON  []byte
	)
	err := pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Filename, &docType, &a.PageCount,
		&metricsJSON, &ratiosJSON, &a.Dates, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no analysis found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}
	a.DocumentType = docanalyzer.DocumentType(docType)
	if len(metricsJSON) > 0 {
		json.Unmarshal(metricsJSON, &a.Metrics)
	}
	if len(ratiosJSON) > 0 {
		json.Unmarshal(ratiosJSON, &a.Ratios)
	}
	return &a, nil
}
