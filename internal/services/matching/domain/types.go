// Package domain holds the match results and the contracts the matching engine depends on
package domain

import (
	"time"

	invdom "lostfound/internal/services/inventory/domain"

	"github.com/google/uuid"
)

// CheckInput is a draft lost request checked against the found inventory before it is filed
type CheckInput struct {
	Name        string `json:"name" validate:"max=200" example:"White AirPods Pro"`
	Description string `json:"description" validate:"max=2000" example:"lost in the lecture hall"`
	CategoryID  *int64 `json:"category_id,omitempty" validate:"omitempty,min=1" example:"3"`
}

// MatchResult pairs a lost request with its score against one found item
type MatchResult struct {
	RequestID uuid.UUID          `json:"request_id"`
	Request   invdom.LostRequest `json:"request"`
	Score     int                `json:"score"`
	Reasons   []string           `json:"reasons"`
}

// Outcome is the delivery result of one notice
type Outcome struct {
	RequestID uuid.UUID `json:"request_id"`
	Recipient string    `json:"recipient"`
	Err       error     `json:"-"`
}

// Delivered reports whether the notice went out
func (o Outcome) Delivered() bool { return o.Err == nil }

// Batch is everything one orchestrator run produced for a found item
type Batch struct {
	Item      invdom.FoundItem `json:"item"`
	Results   []MatchResult    `json:"results"`
	Outcomes  []Outcome        `json:"outcomes"`
	Scanned   int              `json:"scanned"`
	Threshold int              `json:"threshold"`
	Duration  time.Duration    `json:"duration"`
	Err       error            `json:"-"`
}

// Notified counts the delivered notices
func (b Batch) Notified() int {
	n := 0
	for _, o := range b.Outcomes {
		if o.Delivered() {
			n++
		}
	}
	return n
}

// RunRecord is the aggregate telemetry row written per orchestrator run
type RunRecord struct {
	RunID     uuid.UUID
	ItemID    uuid.UUID
	Scanned   int
	Matched   int
	Notified  int
	Failed    int
	Threshold int
	Duration  time.Duration
	CreatedAt time.Time
}
