package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"homeserve/models"
)

func TestHaversineKm(t *testing.T) {
	lightsview := models.LatLng{Lat: -34.8583, Lng: 138.6318}
	assert.Zero(t, haversineKm(lightsview, lightsview))

	// Adelaide CBD to Lightsview is roughly 6.5 km.
	cbd := models.LatLng{Lat: -34.9285, Lng: 138.6007}
	dist := haversineKm(cbd, lightsview)
	assert.InDelta(t, 8.3, dist, 1.0)
}

func TestCheckZoneInsideHotZone(t *testing.T) {
	svc := &DefaultCatalogService{}

	// At the Lightsview center itself.
	report := svc.CheckZone(models.LatLng{Lat: -34.8583, Lng: 138.6318})
	assert.True(t, report.InZone)
	assert.Equal(t, "high", report.RiskLevel)
	assert.Contains(t, report.Restrictions, "No indoor services")
}

func TestCheckZoneOutside(t *testing.T) {
	svc := &DefaultCatalogService{}

	// Glenelg beach, well clear of every zone.
	report := svc.CheckZone(models.LatLng{Lat: -34.9803, Lng: 138.5126})
	assert.False(t, report.InZone)
	assert.Empty(t, report.RiskLevel)
	assert.Empty(t, report.Restrictions)
}

func TestCheckZoneNearestCenterWins(t *testing.T) {
	svc := &DefaultCatalogService{}

	// Just off the Oakden center, inside its 2.5 km radius but outside
	// Lightsview's 2 km radius.
	report := svc.CheckZone(models.LatLng{Lat: -34.8567, Lng: 138.6476})
	assert.True(t, report.InZone)
	assert.Equal(t, "medium", report.RiskLevel)
}
