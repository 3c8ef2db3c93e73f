package ports

import (
	"context"

	"github.com/ecocollect/collection-system/internal/core/domain"
)

// LocationRepository defines persistence operations for collection points.
// Every operation is a single atomic document operation.
type LocationRepository interface {
	// Insert stores a new location and returns the generated identifier.
	Insert(ctx context.Context, loc *domain.Location) (string, error)
	// FindAll returns every stored location in insertion order.
	FindAll(ctx context.Context) ([]domain.Location, error)
	// Replace swaps all mutable fields of the location matching loc.ID and
	// returns the updated record. Returns ErrLocationNotFound when no
	// document matches.
	Replace(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	// Delete removes the location with the given id. Deleting an id that does
	// not exist is not an error.
	Delete(ctx context.Context, id string) error
}
