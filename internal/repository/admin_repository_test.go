package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neatify/neatify-api/internal/models"
)

func newAdminRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
		db.Close()
	}
	return sqlxDB, mock, cleanup
}

func TestAdminRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newAdminRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "location", "location_type"}).
		AddRow("adm-1", "admin@x", "North Campus", "campus")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = LOWER($1)")).
		WithArgs("Admin@X").
		WillReturnRows(rows)

	admin, err := repo.FindByEmail(context.Background(), "Admin@X")
	require.NoError(t, err)
	assert.Equal(t, "North Campus", admin.Location)
	assert.Equal(t, models.LocationCampus, admin.Type)
}

func TestAdminRepositoryFindByEmailMissing(t *testing.T) {
	db, mock, cleanup := newAdminRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = LOWER($1)")).
		WithArgs("nobody@x").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@x")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAdminRepositoryDistinctLocations(t *testing.T) {
	db, mock, cleanup := newAdminRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	rows := sqlmock.NewRows([]string{"location"}).
		AddRow("Bennett University").
		AddRow("Sharda University")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT location FROM admins WHERE location_type = $1 ORDER BY location")).
		WithArgs("campus").
		WillReturnRows(rows)

	locations, err := repo.DistinctLocations(context.Background(), models.LocationCampus)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bennett University", "Sharda University"}, locations)
}
