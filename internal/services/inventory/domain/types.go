// Package domain holds the found item and lost request records and the inventory contracts
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus is the lifecycle state of a found item
type ItemStatus string

// Found item states
const (
	ItemAvailable ItemStatus = "available"
	ItemPending   ItemStatus = "pending"
	ItemClaimed   ItemStatus = "claimed"
)

// RequestStatus is the lifecycle state of a lost request
type RequestStatus string

// Lost request states
const (
	RequestActive    RequestStatus = "active"
	RequestMatched   RequestStatus = "matched"
	RequestCancelled RequestStatus = "cancelled"
	RequestExpired   RequestStatus = "expired"
)

// FoundItem is an item someone reported finding
type FoundItem struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	CategoryID    *int64     `json:"category_id,omitempty"`
	LocationID    *int64     `json:"location_id,omitempty"`
	LocationLabel string     `json:"location_label,omitempty"`
	ImageRef      string     `json:"image_ref,omitempty"`
	Status        ItemStatus `json:"status"`
	FoundAt       time.Time  `json:"found_at"`
}

// LostRequest is an item someone pre-registered as lost
type LostRequest struct {
	ID            uuid.UUID     `json:"id"`
	OwnerID       string        `json:"owner_id"`
	OwnerAddress  string        `json:"owner_address"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	CategoryID    *int64        `json:"category_id,omitempty"`
	LocationID    *int64        `json:"location_id,omitempty"`
	Status        RequestStatus `json:"status"`
	MatchedItemID *uuid.UUID    `json:"matched_item_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// NewFoundItem is the input for reporting a found item
type NewFoundItem struct {
	Name          string     `json:"name" validate:"notblank,max=200" example:"Blue Nike Backpack"`
	Description   string     `json:"description" validate:"max=2000" example:"backpack found near gym"`
	CategoryID    *int64     `json:"category_id,omitempty" validate:"omitempty,min=1" example:"1"`
	LocationID    *int64     `json:"location_id,omitempty" validate:"omitempty,min=1" example:"2"`
	LocationLabel string     `json:"location_label,omitempty" validate:"max=200" example:"North gym"`
	ImageRef      string     `json:"image_ref,omitempty" validate:"max=500" example:"items/2024/backpack.jpg"`
	FoundAt       *time.Time `json:"found_at,omitempty"`
}

// NewLostRequest is the input for registering a lost request
type NewLostRequest struct {
	OwnerID      string `json:"owner_id" validate:"notblank,max=100" example:"u_1842"`
	OwnerAddress string `json:"owner_address" validate:"required,email" example:"sam@example.edu"`
	Name         string `json:"name" validate:"notblank,max=200" example:"Navy blue backpack"`
	Description  string `json:"description" validate:"max=2000" example:"lost my nike bag at gym"`
	CategoryID   *int64 `json:"category_id,omitempty" validate:"omitempty,min=1" example:"1"`
	LocationID   *int64 `json:"location_id,omitempty" validate:"omitempty,min=1" example:"2"`
}

// CandidateQuery selects available items where any token is contained in name or description,
// or the category matches when CategoryID is set
type CandidateQuery struct {
	Tokens     []string
	CategoryID *int64
	Limit      int
}

// ItemSearch selects available items optionally narrowed by category and one contained token
type ItemSearch struct {
	Token      string
	CategoryID *int64
	Limit      int
}
