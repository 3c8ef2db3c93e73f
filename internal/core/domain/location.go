package domain

import "errors"

var ErrLocationNotFound = errors.New("location not found")

// ErrValidation marks client errors caused by missing or malformed input.
// Wrap it with the offending field so the message survives to the response.
var ErrValidation = errors.New("invalid input")

// Geolocation carries device-captured coordinates. They are stored exactly as
// submitted (string-encoded decimal degrees), never parsed server-side.
type Geolocation struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Location is a registered waste collection point.
type Location struct {
	ID          string      `json:"id"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Pincode     string      `json:"pincode"`
	Geolocation Geolocation `json:"geolocation"`
}
