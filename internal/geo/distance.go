package geo

import (
	"sort"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/goowebia/hay-paso/internal/domain"
)

const earthRadiusKm = 6371.0088

type Nearby struct {
	Report     *domain.Report `json:"report"`
	DistanceKM float64        `json:"distance_km"`
}

func DistanceKM(a, b domain.Coordinates) float64 {
	var angle s1.Angle = s2.LatLngFromDegrees(a.Lat, a.Lng).Distance(s2.LatLngFromDegrees(b.Lat, b.Lng))
	return angle.Radians() * earthRadiusKm
}

// Within keeps reports with coordinates inside radiusKm of center, closest first.
// Reports without coordinates are skipped.
func Within(reports []*domain.Report, center domain.Coordinates, radiusKm float64) []Nearby {
	out := make([]Nearby, 0)
	for _, r := range reports {
		if r.Coords == nil {
			continue
		}
		d := DistanceKM(center, *r.Coords)
		if d <= radiusKm {
			out = append(out, Nearby{Report: r, DistanceKM: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKM < out[j].DistanceKM })
	return out
}
