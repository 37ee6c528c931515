package valueobject

import "time"

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Lat: lat, Lng: lng}
}

func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 &&
		c.Lng >= -180 && c.Lng <= 180
}

// Location is a named place: a catalog entry or a simulated location derived from one.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	District  string  `json:"district"`
}

func NewLocation(lat, lng float64, address, district string) Location {
	return Location{
		Latitude:  lat,
		Longitude: lng,
		Address:   address,
		District:  district,
	}
}

func (l Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Latitude, Lng: l.Longitude}
}

func (l Location) IsValid() bool {
	return l.Coordinate().IsValid()
}

// Position is a device geolocation fix.
type Position struct {
	Coordinate
	Accuracy  *float64
	Timestamp time.Time
}

func NewPosition(lat, lng float64, accuracy *float64, ts time.Time) Position {
	return Position{
		Coordinate: Coordinate{Lat: lat, Lng: lng},
		Accuracy:   accuracy,
		Timestamp:  ts,
	}
}
