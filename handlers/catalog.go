package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homeserve/models"
	"homeserve/services/catalog"
	"homeserve/utils"
)

// CatalogHandler exposes the browsable catalog: search, packages, slot
// availability, restrictions and the zone lookup.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// SearchServices handles GET /api/services/search?query=&category=.
func (h *CatalogHandler) SearchServices(c *gin.Context) {
	services, err := h.Service.SearchServices(c.Request.Context(), c.Query("query"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetServiceSlots handles GET /api/services/:id/slots.
func (h *CatalogHandler) GetServiceSlots(c *gin.Context) {
	h.listSlots(c, models.OfferingRef{Kind: models.OfferingService, ID: c.Param("id")})
}

// GetServiceRestrictions handles GET /api/services/:id/restrictions.
func (h *CatalogHandler) GetServiceRestrictions(c *gin.Context) {
	restrictions, err := h.Service.GetRestrictions(c.Request.Context(), models.OfferingRef{Kind: models.OfferingService, ID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"covidRestrictions": restrictions})
}

// ListPackages handles GET /api/packages.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.Service.ListPackages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GetPackage handles GET /api/packages/:id.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	pkg, err := h.Service.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GetPackageSlots handles GET /api/packages/:id/slots.
func (h *CatalogHandler) GetPackageSlots(c *gin.Context) {
	h.listSlots(c, models.OfferingRef{Kind: models.OfferingPackage, ID: c.Param("id")})
}

func (h *CatalogHandler) listSlots(c *gin.Context, ref models.OfferingRef) {
	groups, err := h.Service.ListSlots(c.Request.Context(), ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": groups})
}

// CheckZone handles POST /api/zones/check.
func (h *CatalogHandler) CheckZone(c *gin.Context) {
	var point models.LatLng
	if err := c.ShouldBindJSON(&point); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Service.CheckZone(point))
}
