package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/neatify/neatify-api/internal/models"
)

const reportColumns = "id, user_id, campus, image_url, description, category, status, longitude, latitude, area, created_at, updated_at"

// ReportRepository manages persistence for cleanliness reports.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs a new repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new report.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}
	report.UpdatedAt = now

	query := `INSERT INTO reports (id, user_id, campus, image_url, description, category, status, longitude, latitude, area, created_at, updated_at)
VALUES (:id, :user_id, :campus, :image_url, :description, :category, :status, :longitude, :latitude, :area, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	report.Normalize()
	return nil
}

// List returns reports matching the filter, newest first. Every filter field
// is an exact-equality match.
func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.UserID != "" {
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)+1))
		args = append(args, filter.UserID)
	}
	if filter.Campus != "" {
		where = append(where, fmt.Sprintf("campus = $%d", len(args)+1))
		args = append(args, filter.Campus)
	}
	if filter.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, string(filter.Category))
	}
	if filter.Area != "" {
		where = append(where, fmt.Sprintf("area = $%d", len(args)+1))
		args = append(args, filter.Area)
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, string(filter.Status))
	}
	if len(filter.Coordinates) == 2 {
		where = append(where, fmt.Sprintf("longitude = $%d", len(args)+1))
		args = append(args, filter.Coordinates[0])
		where = append(where, fmt.Sprintf("latitude = $%d", len(args)+1))
		args = append(args, filter.Coordinates[1])
	}

	query := fmt.Sprintf("SELECT %s FROM reports WHERE %s ORDER BY created_at DESC",
		reportColumns, strings.Join(where, " AND "))

	var reports []models.Report
	if err := r.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	for i := range reports {
		reports[i].Normalize()
	}
	return reports, nil
}

// UpdateStatus sets the status of one report and returns the updated row.
// Returns sql.ErrNoRows when the report does not exist.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error) {
	query := fmt.Sprintf(`UPDATE reports SET status = $1, updated_at = $2 WHERE id = $3
RETURNING %s`, reportColumns)

	var report models.Report
	err := r.db.QueryRowxContext(ctx, query, string(status), time.Now().UTC(), id).StructScan(&report)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update report status %s: %w", id, err)
	}
	report.Normalize()
	return &report, nil
}
