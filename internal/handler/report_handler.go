package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neatify/neatify-api/internal/dto"
	"github.com/neatify/neatify-api/internal/models"
	"github.com/neatify/neatify-api/internal/service"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
	"github.com/neatify/neatify-api/pkg/response"
)

type reportService interface {
	Create(ctx context.Context, identity *models.Identity, in service.CreateReportInput) (*models.Report, error)
	ListForAdmin(ctx context.Context, req dto.FetchReportsRequest) ([]models.Report, error)
	ListForUser(ctx context.Context, identity *models.Identity, status string) ([]models.Report, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Report, error)
}

// ReportHandler exposes the report lifecycle endpoints.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs a report handler.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Submit godoc
// @Summary Submit a cleanliness report
// @Tags Reports
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Photo of the mess"
// @Param description formData string true "Description"
// @Param campus formData string true "Campus or municipality name"
// @Param category formData string false "campus | room | helpdesk | garbage"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Param area formData string false "Sub-location (campus mode)"
// @Success 201 {object} dto.SubmitReportResponse
// @Router /reports [post]
func (h *ReportHandler) Submit(c *gin.Context) {
	identity := identityFromContext(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var form dto.CreateReportForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid report payload."))
		return
	}

	in := service.CreateReportInput{
		Description: form.Description,
		Campus:      form.Campus,
		Category:    form.Category,
		Area:        form.Area,
	}
	in.Longitude, in.Latitude = parseCoordinates(form.Longitude, form.Latitude)

	var file multipart.File
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err = fileHeader.Open()
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to read image."))
			return
		}
		defer file.Close()
		in.Image = file
	}

	report, err := h.service.Create(c.Request.Context(), identity, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SubmitReportResponse{
		Message: "Report submitted successfully.",
		Report:  report,
	})
}

// Fetch godoc
// @Summary List reports for a location scope
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body dto.FetchReportsRequest true "Location filter"
// @Success 200 {array} models.Report
// @Router /reports/fetch [post]
func (h *ReportHandler) Fetch(c *gin.Context) {
	identity := identityFromContext(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.FetchReportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid payload."))
		return
	}

	reports, err := h.service.ListForAdmin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reports)
}

// UserReports godoc
// @Summary List the caller's own reports
// @Tags Reports
// @Produce json
// @Param status query string false "pending | ongoing | completed"
// @Success 200 {array} models.Report
// @Failure 404 {object} map[string]string
// @Router /reports/user/reports [get]
func (h *ReportHandler) UserReports(c *gin.Context) {
	identity := identityFromContext(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	reports, err := h.service.ListForUser(c.Request.Context(), identity, c.Query("status"))
	if err != nil {
		// An empty history is a {"message"} 404, distinct from the
		// {"error"} validation shape.
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Code == appErrors.ErrNotFound.Code {
			response.Message(c, http.StatusNotFound, appErr.Message)
			return
		}
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reports)
}

// UpdateStatus godoc
// @Summary Update a report's triage status
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param payload body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.UpdateStatusResponse
// @Router /reports/{id}/status [patch]
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid status provided."))
		return
	}

	report, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.UpdateStatusResponse{
		Message: "Status updated successfully.",
		Report:  report,
	})
}

// parseCoordinates accepts the pair only when both values parse as floats,
// mirroring the mobile client which always sends both or neither.
func parseCoordinates(longitude, latitude string) (*float64, *float64) {
	if longitude == "" || latitude == "" {
		return nil, nil
	}
	lon, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return nil, nil
	}
	return &lon, &lat
}
