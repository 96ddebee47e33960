// File: services/catalog/zones.go
package catalog

import (
	"math"

	"homeserve/models"
)

// hotZones lists the areas with service restrictions in force (Adelaide
// suburbs).
var hotZones = []models.HotZone{
	{
		Center:    models.LatLng{Lat: -34.8583, Lng: 138.6318}, // Lightsview
		RadiusKm:  2,
		RiskLevel: "high",
		Restrictions: []string{
			"No indoor services",
			"Outdoor services with masks only",
			"Essential services only",
		},
	},
	{
		Center:    models.LatLng{Lat: -34.8567, Lng: 138.6476}, // Oakden
		RadiusKm:  2.5,
		RiskLevel: "medium",
		Restrictions: []string{
			"Indoor services with masks and vaccination proof",
			"Limited number of service providers",
		},
	},
	{
		Center:    models.LatLng{Lat: -34.9196, Lng: 138.6841}, // Magill
		RadiusKm:  3,
		RiskLevel: "medium",
		Restrictions: []string{
			"Indoor services with masks",
			"Social distancing required",
			"Regular sanitization",
		},
	},
	{
		Center:    models.LatLng{Lat: -34.95, Lng: 138.6}, // Unley
		RadiusKm:  2,
		RiskLevel: "high",
		Restrictions: []string{
			"Emergency services only",
			"Strict mask mandate",
			"No indoor services",
		},
	},
}

const earthRadiusKm = 6371

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// haversineKm computes the great-circle distance between two coordinates.
func haversineKm(a, b models.LatLng) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// CheckZone reports whether a coordinate falls inside a restricted hot zone.
// When zones overlap, the nearest center wins.
func (svc *DefaultCatalogService) CheckZone(point models.LatLng) models.ZoneReport {
	var nearest *models.HotZone
	nearestDist := math.MaxFloat64

	for i := range hotZones {
		dist := haversineKm(point, hotZones[i].Center)
		if dist <= hotZones[i].RadiusKm && dist < nearestDist {
			nearest = &hotZones[i]
			nearestDist = dist
		}
	}

	if nearest == nil {
		return models.ZoneReport{InZone: false}
	}
	return models.ZoneReport{
		InZone:       true,
		RiskLevel:    nearest.RiskLevel,
		Restrictions: nearest.Restrictions,
	}
}
