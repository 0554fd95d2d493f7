package storage

import (
	"context"

	"gaharness/internal/model"
)

// Store persists aggregated run summaries.
type Store interface {
	Init(ctx context.Context) error
	SaveSummary(ctx context.Context, summary model.RunSummary) error
	GetSummary(ctx context.Context, id string) (model.RunSummary, bool, error)
	// ListSummaries returns summaries in first-save order. An empty batchID
	// lists every batch.
	ListSummaries(ctx context.Context, batchID string) ([]model.RunSummary, error)
}
