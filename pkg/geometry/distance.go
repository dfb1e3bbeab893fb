package geometry

import "math"

// 地球平均半径（公里）
const EarthRadiusKm = 6371.0

func deg2Rad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Haversine computes the great-circle distance between two coordinates,
// in kilometers.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2Rad(lat2 - lat1)
	dLon := deg2Rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2Rad(lat1))*math.Cos(deg2Rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
