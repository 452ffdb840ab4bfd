package dto

import "github.com/neatify/neatify-api/internal/models"

// CreateReportForm carries the multipart fields of POST /api/reports. The
// image file itself is read separately by the handler.
type CreateReportForm struct {
	Description string `form:"description"`
	Campus      string `form:"campus"`
	Category    string `form:"category"`
	Latitude    string `form:"latitude"`
	Longitude   string `form:"longitude"`
	Area        string `form:"area"`
}

// FetchReportsRequest filters the admin-facing report listing.
type FetchReportsRequest struct {
	Location    string    `json:"location" validate:"required"`
	Category    string    `json:"category"`
	Area        string    `json:"area"`
	Coordinates []float64 `json:"coordinates"`
}

// UpdateStatusRequest changes a report's triage status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SubmitReportResponse confirms creation and echoes the stored document.
type SubmitReportResponse struct {
	Message string         `json:"message"`
	Report  *models.Report `json:"report"`
}

// UpdateStatusResponse returns the updated document.
type UpdateStatusResponse struct {
	Message string         `json:"message"`
	Report  *models.Report `json:"report"`
}

// UploadImageResponse is returned by the standalone image upload endpoint.
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
