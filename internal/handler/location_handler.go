package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neatify/neatify-api/internal/models"
	"github.com/neatify/neatify-api/pkg/response"
)

// LocationHandler serves the campus and municipality directories.
type LocationHandler struct {
	admins adminService
}

// NewLocationHandler constructs a location handler.
func NewLocationHandler(admins adminService) *LocationHandler {
	return &LocationHandler{admins: admins}
}

// ListCampuses godoc
// @Summary List campus names with at least one admin
// @Tags Locations
// @Produce json
// @Success 200 {array} dto.LocationName
// @Router /campus/list [get]
func (h *LocationHandler) ListCampuses(c *gin.Context) {
	names, err := h.admins.ListLocations(c.Request.Context(), models.LocationCampus)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, names)
}

// ListMunicipalities godoc
// @Summary List municipality names with at least one admin
// @Tags Locations
// @Produce json
// @Success 200 {array} dto.LocationName
// @Router /municipality/list [get]
func (h *LocationHandler) ListMunicipalities(c *gin.Context) {
	names, err := h.admins.ListLocations(c.Request.Context(), models.LocationMunicipality)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, names)
}
