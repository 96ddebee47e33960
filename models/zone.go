package models

// LatLng is a geographic coordinate.
type LatLng struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// HotZone is a circular area with service restrictions in force.
type HotZone struct {
	Center       LatLng   `json:"center"`
	RadiusKm     float64  `json:"radiusKm"`
	RiskLevel    string   `json:"riskLevel"` // "high", "medium"
	Restrictions []string `json:"restrictions"`
}

// ZoneReport is the result of a zone lookup for a coordinate.
type ZoneReport struct {
	InZone       bool     `json:"inZone"`
	RiskLevel    string   `json:"riskLevel,omitempty"`
	Restrictions []string `json:"restrictions,omitempty"`
}
