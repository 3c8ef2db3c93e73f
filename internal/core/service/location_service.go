package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecocollect/collection-system/internal/api/metrics"
	"github.com/ecocollect/collection-system/internal/core/domain"
	"github.com/ecocollect/collection-system/internal/core/ports"
)

// LocationService implements the collection-point CRUD use cases. Reads are
// served from the cache when warm; every mutation invalidates it so a read
// issued after a successful write always reflects that write.
type LocationService struct {
	repo   ports.LocationRepository
	cache  ports.LocationCache
	logger zerolog.Logger
}

func NewLocationService(repo ports.LocationRepository, cache ports.LocationCache, logger zerolog.Logger) *LocationService {
	return &LocationService{repo: repo, cache: cache, logger: logger}
}

func (s *LocationService) Create(ctx context.Context, input ports.CreateLocationInput) (string, error) {
	loc, err := buildLocation(input.Address, input.City, input.Pincode, input.Latitude, input.Longitude)
	if err != nil {
		return "", err
	}

	id, err := s.repo.Insert(ctx, loc)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert location")
		return "", err
	}

	s.invalidateCache(ctx)
	metrics.LocationsCreatedTotal.Inc()
	s.logger.Info().
		Str("location_id", id).
		Str("city", loc.City).
		Str("requested_by", input.RequestedBy).
		Msg("location created")

	return id, nil
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	if locs, ok, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("location cache read failed")
	} else if ok {
		metrics.LocationCacheTotal.WithLabelValues("hit").Inc()
		return locs, nil
	} else {
		metrics.LocationCacheTotal.WithLabelValues("miss").Inc()
	}

	locs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list locations")
		return nil, err
	}

	if err := s.cache.Set(ctx, locs); err != nil {
		s.logger.Warn().Err(err).Msg("location cache write failed")
	}

	return locs, nil
}

func (s *LocationService) Update(ctx context.Context, input ports.UpdateLocationInput) (*domain.Location, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}

	loc, err := buildLocation(input.Address, input.City, input.Pincode, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}
	loc.ID = id

	updated, err := s.repo.Replace(ctx, loc)
	if err != nil {
		if !errors.Is(err, domain.ErrLocationNotFound) {
			s.logger.Error().Err(err).Str("location_id", id).Msg("failed to update location")
		}
		return nil, err
	}

	s.invalidateCache(ctx)
	metrics.LocationsUpdatedTotal.Inc()
	s.logger.Info().
		Str("location_id", id).
		Str("requested_by", input.RequestedBy).
		Msg("location updated")

	return updated, nil
}

// Delete removes the location with the given id. A non-existent id is a
// successful no-op: delete is set subtraction, not an existence assertion.
func (s *LocationService) Delete(ctx context.Context, input ports.DeleteLocationInput) error {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return fmt.Errorf("%w: id is required", domain.ErrValidation)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("location_id", id).Msg("failed to delete location")
		return err
	}

	s.invalidateCache(ctx)
	metrics.LocationsDeletedTotal.Inc()
	s.logger.Info().
		Str("location_id", id).
		Str("requested_by", input.RequestedBy).
		Msg("location deleted")

	return nil
}

// buildLocation trims the five submitted fields and rejects the payload if
// any of them is empty. A location is never persisted with an empty field.
func buildLocation(address, city, pincode, latitude, longitude string) (*domain.Location, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"address", &address},
		{"city", &city},
		{"pincode", &pincode},
		{"latitude", &latitude},
		{"longitude", &longitude},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return nil, fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}

	return &domain.Location{
		Address: address,
		City:    city,
		Pincode: pincode,
		Geolocation: domain.Geolocation{
			Latitude:  latitude,
			Longitude: longitude,
		},
	}, nil
}

func (s *LocationService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("location cache invalidation failed")
	}
}
