package domain

import (
	"context"

	"lostfound/internal/core/features"
	"lostfound/internal/core/similarity"
	invdom "lostfound/internal/services/inventory/domain"
	notifydom "lostfound/internal/services/notify/domain"

	"github.com/google/uuid"
)

// RunSink stores per run telemetry
type RunSink interface {
	Record(ctx context.Context, r RunRecord) error
}

// ServicePort is the matching engine surface used by the api modules
type ServicePort interface {
	CheckMatches(ctx context.Context, in CheckInput) ([]invdom.FoundItem, error)
	OnFoundItemCreated(ctx context.Context, item invdom.FoundItem) Batch
	SearchForRequest(ctx context.Context, requestID uuid.UUID) ([]invdom.FoundItem, error)
	Extract(text string) features.Summary
	TextSimilarity(a, b string) float64
	Score(found, req similarity.Record) similarity.Result
}

// Inputs are the collaborators the matching module is wired with
type Inputs struct {
	Inventory  invdom.ReaderPort
	Dispatcher notifydom.Dispatcher
	Scorer     *similarity.Scorer
}
