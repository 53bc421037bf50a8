package entity

import (
	"strconv"

	"github.com/paulmach/orb"
)

// Restaurant is a point of interest returned by the map data source.
type Restaurant struct {
	ID              int64             `json:"id"`
	Type            string            `json:"type"` // node, way or relation
	Name            string            `json:"name"`
	Location        orb.Point         `json:"location"` // [lng, lat]
	Cuisine         string            `json:"cuisine,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	Website         string            `json:"website,omitempty"`
	OpeningHours    string            `json:"opening_hours,omitempty"`
	Wheelchair      string            `json:"wheelchair,omitempty"`
	Image           string            `json:"image,omitempty"`
	Menu            string            `json:"menu,omitempty"`
	Tags            map[string]string `json:"tags,omitempty"`
	SimulatedRating string            `json:"simulated_rating,omitempty"`
	Address         string            `json:"address,omitempty"`
	DistanceMeters  float64           `json:"distance_meters,omitempty"`
}

// Ref returns the OSM element reference, e.g. "node/123".
func (r Restaurant) Ref() string {
	return r.Type + "/" + strconv.FormatInt(r.ID, 10)
}

// Lat returns the latitude of the restaurant.
func (r Restaurant) Lat() float64 {
	return r.Location.Lat()
}

// Lng returns the longitude of the restaurant.
func (r Restaurant) Lng() float64 {
	return r.Location.Lon()
}

// Street returns the addr:street tag, if any.
func (r Restaurant) Street() string {
	return r.Tags["addr:street"]
}
