package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm is the great-circle distance between two coordinates.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Nearest picks the hub closest to (lat, lng). Ties go to the lower route position, then lower id.
func Nearest(hubs []Located, lat, lng float64) (int, bool) {
	best := -1
	var bestDist float64
	for i, h := range hubs {
		d := DistanceKm(lat, lng, h.Latitude, h.Longitude)
		if best < 0 || d < bestDist || (d == bestDist && h.before(hubs[best])) {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// Located is the part of a hub Nearest needs.
type Located struct {
	ID            uint64
	Latitude      float64
	Longitude     float64
	RoutePosition int
}

func (l Located) before(o Located) bool {
	if l.RoutePosition != o.RoutePosition {
		return l.RoutePosition < o.RoutePosition
	}
	return l.ID < o.ID
}
