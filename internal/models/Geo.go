package models

import (
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

// Location is a point of interest owned by the geolocation service.
// It is attached to events at read time and never persisted here.
type Location struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Lat      float64         `json:"lat"`
	Lng      float64         `json:"lng"`
	Geometry *gjson.Geometry `json:"geometry,omitempty"`
}

// Route is a path resource (GeoJSON LineString) owned by the geolocation
// service, used by categories such as marathons or cycling races.
type Route struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DistanceKm  float64         `json:"distance_km"`
	Geometry    *gjson.Geometry `json:"geometry,omitempty"`
}
