package collection

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sort keys accepted by the list endpoints.
const (
	SortRecentlyAdded = "recently-added"
	SortDateTime      = "date-time"
	SortName          = "name"
	SortLocalities    = "localities"
	SortStoneType     = "stone-type"
)

// Entry represents a stone in a user's personal collection (pure domain model)
// @Description A gemstone saved to a user's collection
type Entry struct {
	ID              string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID          string     `json:"userId"`
	GemstoneID      string     `json:"gemstoneId"`
	Name            string     `json:"name" example:"My first amethyst"`
	SerialNumber    string     `json:"serialNumber,omitempty"`
	Photos          []string   `json:"photos,omitempty"`
	AcquisitionDate *time.Time `json:"acquisitionDate,omitempty"`
	AcquisitionCost float64    `json:"acquisitionCost,omitempty"`
	Currency        string     `json:"currency,omitempty" example:"USD"`
	Locality        string     `json:"locality,omitempty" example:"Minas Gerais, Brazil"`
	StoneType       string     `json:"stoneType,omitempty" example:"Raw crystal"`
	StoneSize       string     `json:"stoneSize,omitempty" example:"3.2 cm"`
	Notes           string     `json:"notes,omitempty"`
	IdentifiedAs    string     `json:"identifiedAs,omitempty" example:"Amethyst"`
	Confidence      float64    `json:"confidence,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	IsWishlist      bool       `json:"isWishlist"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CreateEntryRequest carries the user-provided fields when saving a stone
// @Description Request body for saving a gemstone to a collection
type CreateEntryRequest struct {
	Name            string     `json:"name" binding:"required,min=1,max=200"`
	SerialNumber    string     `json:"serialNumber,omitempty"`
	Photos          []string   `json:"photos,omitempty"`
	AcquisitionDate *time.Time `json:"acquisitionDate,omitempty"`
	AcquisitionCost float64    `json:"acquisitionCost,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	Locality        string     `json:"locality,omitempty"`
	StoneType       string     `json:"stoneType,omitempty"`
	StoneSize       string     `json:"stoneSize,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Confidence      float64    `json:"confidence,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	IsWishlist      bool       `json:"isWishlist,omitempty"`
}

// UpdateEntryRequest carries the fields a user may change on an entry
// @Description Request body for updating a collection entry
type UpdateEntryRequest struct {
	Name            *string    `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	SerialNumber    *string    `json:"serialNumber,omitempty"`
	Photos          *[]string  `json:"photos,omitempty"`
	AcquisitionDate *time.Time `json:"acquisitionDate,omitempty"`
	AcquisitionCost *float64   `json:"acquisitionCost,omitempty"`
	Currency        *string    `json:"currency,omitempty"`
	Locality        *string    `json:"locality,omitempty"`
	StoneType       *string    `json:"stoneType,omitempty"`
	StoneSize       *string    `json:"stoneSize,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Tags            *[]string  `json:"tags,omitempty"`
}

// ListQuery captures pagination and sorting for collection listings
type ListQuery struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	SortBy   string `form:"sortBy,default=recently-added"`
	SortDesc bool   `form:"sortDesc,default=true"`
	Wishlist bool   `form:"-"`
}

// Offset converts the 1-based page into a row offset.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Stats summarizes a user's collection
// @Description Aggregate statistics for a user's collection
type Stats struct {
	TotalStones    int64            `json:"totalStones"`
	WishlistCount  int64            `json:"wishlistCount"`
	RarityCounts   map[string]int64 `json:"rarityCounts"`
	TotalSpent     float64          `json:"totalSpent"`
	UniqueStones   int64            `json:"uniqueStones"`
	LocalitiesSeen int64            `json:"localitiesSeen"`
}

// NewEntry builds a collection entry for a user and gemstone.
func NewEntry(userID, gemstoneID, identifiedAs string, req CreateEntryRequest) *Entry {
	now := time.Now()
	return &Entry{
		ID:              uuid.New().String(),
		UserID:          userID,
		GemstoneID:      gemstoneID,
		Name:            req.Name,
		SerialNumber:    req.SerialNumber,
		Photos:          req.Photos,
		AcquisitionDate: req.AcquisitionDate,
		AcquisitionCost: req.AcquisitionCost,
		Currency:        req.Currency,
		Locality:        req.Locality,
		StoneType:       req.StoneType,
		StoneSize:       req.StoneSize,
		Notes:           req.Notes,
		IdentifiedAs:    identifiedAs,
		Confidence:      req.Confidence,
		Tags:            req.Tags,
		IsWishlist:      req.IsWishlist,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CollectionRepository defines the interface for collection data operations
type CollectionRepository interface {
	// Create a new entry
	Create(ctx context.Context, entry *Entry) error

	// Get entry by ID (active entries only)
	GetByID(ctx context.Context, id string) (*Entry, error)

	// List a user's active entries with pagination and sorting
	List(ctx context.Context, userID string, query ListQuery) ([]Entry, int64, error)

	// Update entry fields
	Update(ctx context.Context, id string, updates UpdateEntryRequest) (*Entry, error)

	// Flip the wishlist flag, returning the new value
	ToggleWishlist(ctx context.Context, id string) (bool, error)

	// Soft delete an entry
	Delete(ctx context.Context, id string) error

	// Aggregate statistics for a user
	GetStats(ctx context.Context, userID string) (*Stats, error)
}
