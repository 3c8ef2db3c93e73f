package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createLocationRequest struct {
	Address   string `json:"address"   validate:"required"`
	City      string `json:"city"      validate:"required"`
	Pincode   string `json:"pincode"   validate:"required"`
	Latitude  string `json:"latitude"  validate:"required"`
	Longitude string `json:"longitude" validate:"required"`
}

type updateLocationRequest struct {
	ID        string `json:"id"        validate:"required"`
	Address   string `json:"address"   validate:"required"`
	City      string `json:"city"      validate:"required"`
	Pincode   string `json:"pincode"   validate:"required"`
	Latitude  string `json:"latitude"  validate:"required"`
	Longitude string `json:"longitude" validate:"required"`
}

type deleteLocationRequest struct {
	ID string `json:"id" validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type geolocationResponse struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type locationResponse struct {
	ID          string              `json:"id"`
	Address     string              `json:"address"`
	City        string              `json:"city"`
	Pincode     string              `json:"pincode"`
	Geolocation geolocationResponse `json:"geolocation"`
	// MapsURL is a display-only external map link built from the stored
	// coordinates; it is never persisted.
	MapsURL string `json:"maps_url"`
}

type createLocationResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type listLocationsResponse struct {
	Locations []locationResponse `json:"locations"`
}

type updateLocationResponse struct {
	Message  string           `json:"message"`
	Location locationResponse `json:"location"`
}

type messageResponse struct {
	Message string `json:"message"`
}
