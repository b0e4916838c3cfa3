package usecase

import (
	"context"

	"portfolio-api/internal/domain/knowledge"
)

// KnowledgeSource yields the current knowledge snapshot. Snapshots are
// read-only and shared between callers.
type KnowledgeSource interface {
	Snapshot(ctx context.Context) (*knowledge.Document, error)
}
