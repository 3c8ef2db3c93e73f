package handler

import (
	"fmt"

	"github.com/ecocollect/collection-system/internal/core/domain"
	"github.com/ecocollect/collection-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createLocationRequest, requestedBy string) ports.CreateLocationInput {
	return ports.CreateLocationInput{
		Address:     req.Address,
		City:        req.City,
		Pincode:     req.Pincode,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RequestedBy: requestedBy,
	}
}

func toUpdateInput(req updateLocationRequest, requestedBy string) ports.UpdateLocationInput {
	return ports.UpdateLocationInput{
		ID:          req.ID,
		Address:     req.Address,
		City:        req.City,
		Pincode:     req.Pincode,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RequestedBy: requestedBy,
	}
}

// --- Domain record → HTTP response ---

func toLocationResponse(loc domain.Location) locationResponse {
	return locationResponse{
		ID:      loc.ID,
		Address: loc.Address,
		City:    loc.City,
		Pincode: loc.Pincode,
		Geolocation: geolocationResponse{
			Latitude:  loc.Geolocation.Latitude,
			Longitude: loc.Geolocation.Longitude,
		},
		MapsURL: mapsURL(loc.Geolocation),
	}
}

func toListResponse(locs []domain.Location) listLocationsResponse {
	items := make([]locationResponse, len(locs))
	for i, loc := range locs {
		items[i] = toLocationResponse(loc)
	}
	return listLocationsResponse{Locations: items}
}

// mapsURL builds the external map-viewing link shown next to each collection
// point.
func mapsURL(g domain.Geolocation) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s", g.Latitude, g.Longitude)
}
