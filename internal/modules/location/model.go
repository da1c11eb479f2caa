package location

import "time"

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a cached geocoding result. The address is the unique key;
// once a record exists it is treated as authoritative and never refreshed,
// even if the same address text later points at a different physical place.
type Location struct {
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Coordinates returns the record's coordinate pair.
func (l *Location) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}
