package domain

import (
	"context"

	"github.com/google/uuid"
)

// ReaderPort is the read side the matching engine consumes
type ReaderPort interface {
	ActiveRequests(ctx context.Context) ([]LostRequest, error)
	Candidates(ctx context.Context, q CandidateQuery) ([]FoundItem, error)
	SearchAvailable(ctx context.Context, q ItemSearch) ([]FoundItem, error)
	GetLostRequest(ctx context.Context, id uuid.UUID) (LostRequest, error)
}

// WriterPort is the write side used by the item and request workflows
type WriterPort interface {
	CreateFoundItem(ctx context.Context, in NewFoundItem) (FoundItem, error)
	CreateLostRequest(ctx context.Context, in NewLostRequest) (LostRequest, error)
	GetFoundItem(ctx context.Context, id uuid.UUID) (FoundItem, error)
}

// ServicePort is the whole inventory surface
type ServicePort interface {
	ReaderPort
	WriterPort
}
