package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/neatify/neatify-api/internal/models"
)

// AdminRepository reads the admin directory. The directory is seeded
// out-of-band and never written by the running service.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository constructs a new repository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByEmail matches an admin record case-insensitively. The caller trims
// whitespace before lookup. Returns sql.ErrNoRows when no record matches.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	query := "SELECT id, email, location, location_type FROM admins WHERE LOWER(email) = LOWER($1)"
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return &admin, nil
}

// DistinctLocations lists the unique location names for one location type,
// ordered by name.
func (r *AdminRepository) DistinctLocations(ctx context.Context, locationType models.LocationType) ([]string, error) {
	var locations []string
	query := "SELECT DISTINCT location FROM admins WHERE location_type = $1 ORDER BY location"
	if err := r.db.SelectContext(ctx, &locations, query, string(locationType)); err != nil {
		return nil, fmt.Errorf("list %s locations: %w", locationType, err)
	}
	return locations, nil
}
