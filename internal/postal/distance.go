package postal

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

// DistanceMeters returns the geodesic distance in meters between two
// coordinate pairs.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.Distance(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}

// DistanceFromPostalCenter computes the distance in meters from a postal
// code's centroid to the given point. The second return is false when the
// code is unknown or has no coordinates on file.
func DistanceFromPostalCenter(code string, lat, lon float64) (float64, bool) {
	info := GetPostalCodeInfo(code)
	if info == nil || info.Latitude == nil || info.Longitude == nil {
		return 0, false
	}
	return DistanceMeters(*info.Latitude, *info.Longitude, lat, lon), true
}

// CenterOf returns the centroid of a postal code entry when available.
func CenterOf(info *models.PostalCodeInfo) (lat, lon float64, ok bool) {
	if info == nil || info.Latitude == nil || info.Longitude == nil {
		return 0, 0, false
	}
	return *info.Latitude, *info.Longitude, true
}
