package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neatify/neatify-api/internal/dto"
	"github.com/neatify/neatify-api/internal/models"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
	"github.com/neatify/neatify-api/pkg/response"
)

type adminService interface {
	CheckAdmin(ctx context.Context, req dto.CheckAdminRequest) (*dto.CheckAdminResponse, error)
	ListLocations(ctx context.Context, locationType models.LocationType) ([]dto.LocationName, error)
}

// AuthHandler exposes the admin directory probe.
type AuthHandler struct {
	admins adminService
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(admins adminService) *AuthHandler {
	return &AuthHandler{admins: admins}
}

// CheckAdmin godoc
// @Summary Check whether an email belongs to an admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.CheckAdminRequest true "Email to probe"
// @Success 200 {object} dto.CheckAdminResponse
// @Router /auth/check-admin [post]
func (h *AuthHandler) CheckAdmin(c *gin.Context) {
	var req dto.CheckAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Email is required"))
		return
	}

	resp, err := h.admins.CheckAdmin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
