package geometry

// A geographic location. Index 0 holds the latitude, index 1 the longitude,
// both in degrees.
type Point [2]float64

func NewPoint(lat, lon float64) *Point {
	return &Point{lat, lon}
}

func MakePoint(lat, lon float64) Point {
	return Point{lat, lon}
}

// Latitude of the point, in degrees
func (p Point) Lat() float64 {
	return p[0]
}

// Longitude of the point, in degrees
func (p Point) Lon() float64 {
	return p[1]
}

// Great-circle distance to the other point, in kilometers
func (p Point) DistanceTo(other Point) float64 {
	return Haversine(p.Lat(), p.Lon(), other.Lat(), other.Lon())
}
