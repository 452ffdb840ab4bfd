package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/neatify/neatify-api/internal/dto"
	"github.com/neatify/neatify-api/internal/models"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
)

type reportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error)
}

type imageStore interface {
	Upload(ctx context.Context, image io.Reader) (string, error)
}

// CreateReportInput is the parsed create payload. Image is nil when the form
// carried no file. Latitude and Longitude are set only when both parsed.
type CreateReportInput struct {
	Description string
	Campus      string
	Category    string
	Area        string
	Longitude   *float64
	Latitude    *float64
	Image       io.Reader
}

// ReportService orchestrates the report lifecycle.
type ReportService struct {
	repo      reportRepository
	images    imageStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReportService creates a new report service instance.
func NewReportService(repo reportRepository, images imageStore, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, images: images, validator: validate, logger: logger}
}

// Create validates the submission, uploads the image, and persists the
// report. An upload failure short-circuits: no row is written. New reports
// always start pending regardless of caller input.
func (s *ReportService) Create(ctx context.Context, identity *models.Identity, in CreateReportInput) (*models.Report, error) {
	var missing []string
	if in.Image == nil {
		missing = append(missing, "image")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(in.Campus) == "" {
		missing = append(missing, "campus")
	}
	if len(missing) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("Missing required fields: %s.", strings.Join(missing, ", ")))
	}

	category := models.CategoryGarbage
	if in.Category != "" {
		category = models.ReportCategory(in.Category)
		if !models.ValidCategory(category) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid category provided.")
		}
	}

	imageURL, err := s.images.Upload(ctx, in.Image)
	if err != nil {
		s.logger.Error("image upload failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "Image upload failed.")
	}

	report := &models.Report{
		UserID:      identity.Subject,
		Campus:      in.Campus,
		ImageURL:    imageURL,
		Description: in.Description,
		Category:    category,
		Status:      models.StatusPending,
		Longitude:   in.Longitude,
		Latitude:    in.Latitude,
	}
	if in.Area != "" {
		area := in.Area
		report.Area = &area
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to save report.")
	}

	return report, nil
}

// ListForAdmin returns reports for one location scope, optionally narrowed by
// category, area, or an exact coordinate pair. The caller's admin scope is
// not cross-checked against the requested location.
func (s *ReportService) ListForAdmin(ctx context.Context, req dto.FetchReportsRequest) ([]models.Report, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Location is required.")
	}
	if len(req.Coordinates) != 0 && len(req.Coordinates) != 2 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Coordinates must be a [longitude, latitude] pair.")
	}

	filter := models.ReportFilter{
		Campus:      req.Location,
		Area:        req.Area,
		Coordinates: req.Coordinates,
	}
	if req.Category != "" {
		category := models.ReportCategory(req.Category)
		if !models.ValidCategory(category) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid category provided.")
		}
		filter.Category = category
	}

	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch reports.")
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return reports, nil
}

// ListForUser returns the caller's own reports, newest first. An empty result
// is a NotFound so the client can distinguish it from a validation failure.
func (s *ReportService) ListForUser(ctx context.Context, identity *models.Identity, status string) ([]models.Report, error) {
	filter := models.ReportFilter{UserID: identity.Subject}
	if status != "" {
		st := models.ReportStatus(status)
		if !models.ValidStatus(st) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid status provided.")
		}
		filter.Status = st
	}

	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch reports.")
	}
	if len(reports) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No reports found for this user.")
	}
	return reports, nil
}

// UpdateStatus moves a report to a new triage status. Transitions are
// unconstrained: any status may follow any other.
func (s *ReportService) UpdateStatus(ctx context.Context, id, status string) (*models.Report, error) {
	st := models.ReportStatus(status)
	if !models.ValidStatus(st) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid status provided.")
	}

	report, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Report not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update status.")
	}
	return report, nil
}
