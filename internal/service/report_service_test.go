package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neatify/neatify-api/internal/dto"
	"github.com/neatify/neatify-api/internal/models"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
)

type reportRepoStub struct {
	created    []*models.Report
	createErr  error
	reports    []models.Report
	listErr    error
	lastFilter models.ReportFilter
	updated    *models.Report
	updateErr  error
	updateHits int
}

func (s *reportRepoStub) Create(ctx context.Context, report *models.Report) error {
	if s.createErr != nil {
		return s.createErr
	}
	report.ID = "rep-1"
	s.created = append(s.created, report)
	return nil
}

func (s *reportRepoStub) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.reports, nil
}

func (s *reportRepoStub) UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error) {
	s.updateHits++
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

type imageStoreStub struct {
	url     string
	err     error
	uploads int
}

func (s *imageStoreStub) Upload(ctx context.Context, image io.Reader) (string, error) {
	s.uploads++
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func identity() *models.Identity {
	return &models.Identity{Subject: "user_1", Email: "user@x"}
}

func TestReportServiceCreate(t *testing.T) {
	repo := &reportRepoStub{}
	store := &imageStoreStub{url: "https://res.cloudinary.com/demo/reports/x.jpg"}
	svc := NewReportService(repo, store, nil, nil)

	report, err := svc.Create(context.Background(), identity(), CreateReportInput{
		Description: "Overflowing bin",
		Campus:      "North Campus",
		Image:       strings.NewReader("img-bytes"),
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "user_1", report.UserID)
	assert.Equal(t, models.StatusPending, report.Status)
	assert.Equal(t, models.CategoryGarbage, report.Category)
	assert.Equal(t, store.url, report.ImageURL)
	assert.Nil(t, report.Area)
	assert.Nil(t, report.Coordinates)
}

func TestReportServiceCreateWithOptionalFields(t *testing.T) {
	repo := &reportRepoStub{}
	store := &imageStoreStub{url: "https://res.cloudinary.com/demo/reports/x.jpg"}
	svc := NewReportService(repo, store, nil, nil)

	lon, lat := 77.58, 12.97
	report, err := svc.Create(context.Background(), identity(), CreateReportInput{
		Description: "Spilled paint",
		Campus:      "TechZone II",
		Category:    "helpdesk",
		Area:        "Block C",
		Longitude:   &lon,
		Latitude:    &lat,
		Image:       strings.NewReader("img-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryHelpdesk, report.Category)
	require.NotNil(t, report.Area)
	assert.Equal(t, "Block C", *report.Area)
	require.NotNil(t, report.Longitude)
	assert.Equal(t, lon, *report.Longitude)
}

func TestReportServiceCreateMissingFields(t *testing.T) {
	repo := &reportRepoStub{}
	store := &imageStoreStub{url: "https://img"}
	svc := NewReportService(repo, store, nil, nil)

	_, err := svc.Create(context.Background(), identity(), CreateReportInput{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "image, description, campus")
	assert.Zero(t, store.uploads)
	assert.Empty(t, repo.created)
}

func TestReportServiceCreateInvalidCategory(t *testing.T) {
	repo := &reportRepoStub{}
	store := &imageStoreStub{url: "https://img"}
	svc := NewReportService(repo, store, nil, nil)

	_, err := svc.Create(context.Background(), identity(), CreateReportInput{
		Description: "x",
		Campus:      "North Campus",
		Category:    "arson",
		Image:       strings.NewReader("img"),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, store.uploads)
	assert.Empty(t, repo.created)
}

func TestReportServiceCreateUploadFailure(t *testing.T) {
	repo := &reportRepoStub{}
	store := &imageStoreStub{err: errors.New("cloudinary down")}
	svc := NewReportService(repo, store, nil, nil)

	_, err := svc.Create(context.Background(), identity(), CreateReportInput{
		Description: "x",
		Campus:      "North Campus",
		Image:       strings.NewReader("img"),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestReportServiceListForAdminRequiresLocation(t *testing.T) {
	svc := NewReportService(&reportRepoStub{}, &imageStoreStub{}, nil, nil)

	_, err := svc.ListForAdmin(context.Background(), dto.FetchReportsRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "Location is required.", appErr.Message)
}

func TestReportServiceListForAdminFilters(t *testing.T) {
	repo := &reportRepoStub{reports: []models.Report{{ID: "rep-1"}}}
	svc := NewReportService(repo, &imageStoreStub{}, nil, nil)

	reports, err := svc.ListForAdmin(context.Background(), dto.FetchReportsRequest{
		Location:    "North Campus",
		Category:    "garbage",
		Area:        "Block C",
		Coordinates: []float64{77.1, 28.5},
	})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "North Campus", repo.lastFilter.Campus)
	assert.Equal(t, models.CategoryGarbage, repo.lastFilter.Category)
	assert.Equal(t, "Block C", repo.lastFilter.Area)
	assert.Equal(t, []float64{77.1, 28.5}, repo.lastFilter.Coordinates)
	assert.Empty(t, repo.lastFilter.UserID)
}

func TestReportServiceListForAdminBadCoordinates(t *testing.T) {
	svc := NewReportService(&reportRepoStub{}, &imageStoreStub{}, nil, nil)

	_, err := svc.ListForAdmin(context.Background(), dto.FetchReportsRequest{
		Location:    "North Campus",
		Coordinates: []float64{77.1},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportServiceListForAdminEmptyIsOK(t *testing.T) {
	svc := NewReportService(&reportRepoStub{}, &imageStoreStub{}, nil, nil)

	reports, err := svc.ListForAdmin(context.Background(), dto.FetchReportsRequest{Location: "Nowhere"})
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestReportServiceListForUser(t *testing.T) {
	repo := &reportRepoStub{reports: []models.Report{{ID: "rep-1", UserID: "user_1"}}}
	svc := NewReportService(repo, &imageStoreStub{}, nil, nil)

	reports, err := svc.ListForUser(context.Background(), identity(), "pending")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "user_1", repo.lastFilter.UserID)
	assert.Equal(t, models.StatusPending, repo.lastFilter.Status)
}

func TestReportServiceListForUserEmpty(t *testing.T) {
	svc := NewReportService(&reportRepoStub{}, &imageStoreStub{}, nil, nil)

	_, err := svc.ListForUser(context.Background(), identity(), "")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "No reports found for this user.", appErr.Message)
}

func TestReportServiceListForUserInvalidStatus(t *testing.T) {
	repo := &reportRepoStub{}
	svc := NewReportService(repo, &imageStoreStub{}, nil, nil)

	_, err := svc.ListForUser(context.Background(), identity(), "archived")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportServiceUpdateStatus(t *testing.T) {
	repo := &reportRepoStub{updated: &models.Report{ID: "rep-1", Status: models.StatusOngoing}}
	svc := NewReportService(repo, &imageStoreStub{}, nil, nil)

	report, err := svc.UpdateStatus(context.Background(), "rep-1", "ongoing")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOngoing, report.Status)
}

func TestReportServiceUpdateStatusInvalid(t *testing.T) {
	repo := &reportRepoStub{}
	svc := NewReportService(repo, &imageStoreStub{}, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), "rep-1", "archived")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "Invalid status provided.", appErr.Message)
	assert.Zero(t, repo.updateHits)
}

func TestReportServiceUpdateStatusMissing(t *testing.T) {
	repo := &reportRepoStub{updateErr: sql.ErrNoRows}
	svc := NewReportService(repo, &imageStoreStub{}, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), "rep-404", "completed")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Report not found.", appErr.Message)
}
