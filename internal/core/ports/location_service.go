package ports

import (
	"context"

	"github.com/ecocollect/collection-system/internal/core/domain"
)

// CreateLocationInput carries the five fields required to register a
// collection point. All five must be non-empty after trimming. RequestedBy is
// the session identity of the caller, used for log context only.
type CreateLocationInput struct {
	Address     string
	City        string
	Pincode     string
	Latitude    string
	Longitude   string
	RequestedBy string
}

// UpdateLocationInput carries a full replacement payload for an existing
// collection point.
type UpdateLocationInput struct {
	ID          string
	Address     string
	City        string
	Pincode     string
	Latitude    string
	Longitude   string
	RequestedBy string
}

// DeleteLocationInput identifies the collection point to remove.
type DeleteLocationInput struct {
	ID          string
	RequestedBy string
}

// LocationService defines use-case operations for collection points.
type LocationService interface {
	Create(ctx context.Context, input CreateLocationInput) (string, error)
	List(ctx context.Context) ([]domain.Location, error)
	Update(ctx context.Context, input UpdateLocationInput) (*domain.Location, error)
	Delete(ctx context.Context, input DeleteLocationInput) error
}

// LocationCache is a best-effort read cache for the full location list.
// Implementations must never be required for correctness: a cache failure
// degrades to the repository.
type LocationCache interface {
	Get(ctx context.Context) ([]domain.Location, bool, error)
	Set(ctx context.Context, locs []domain.Location) error
	Invalidate(ctx context.Context) error
}
