package poicache

import (
	"maps"
	"math"
	"strconv"

	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// decorate keeps elements with a name and a position and converts them to restaurants.
func (c *Cache) decorate(places []service.Place, origin orb.Point) []entity.Restaurant {
	restaurants := make([]entity.Restaurant, 0, len(places))
	for _, p := range places {
		name := p.Tags["name"]
		if name == "" || p.Lat == nil || p.Lon == nil {
			continue
		}

		location := orb.Point{*p.Lon, *p.Lat}
		r := entity.Restaurant{
			ID:             p.ID,
			Type:           p.Type,
			Name:           name,
			Location:       location,
			Cuisine:        p.Tags["cuisine"],
			Phone:          firstTag(p.Tags, "phone", "contact:phone"),
			Website:        firstTag(p.Tags, "website", "contact:website"),
			OpeningHours:   p.Tags["opening_hours"],
			Wheelchair:     p.Tags["wheelchair"],
			Image:          p.Tags["image"],
			Menu:           firstTag(p.Tags, "menu", "website:menu"),
			Tags:           maps.Clone(p.Tags),
			DistanceMeters: math.Round(geo.DistanceHaversine(origin, location)),
		}
		if c.opts.SimulateRating {
			r.SimulatedRating = SimulatedRating(c.opts.Rand())
		}
		restaurants = append(restaurants, r)
	}

	return restaurants
}

// SimulatedRating maps u in [0, 1) to a display rating between 3.0 and 5.0 with one decimal.
func SimulatedRating(u float64) string {
	return strconv.FormatFloat(3+u*2, 'f', 1, 64)
}

func firstTag(tags map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := tags[k]; v != "" {
			return v
		}
	}

	return ""
}
