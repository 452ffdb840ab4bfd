package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/neatify/neatify-api/internal/dto"
	"github.com/neatify/neatify-api/internal/models"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
)

type adminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	DistinctLocations(ctx context.Context, locationType models.LocationType) ([]string, error)
}

// AdminService answers admin-directory lookups and the location listings.
type AdminService struct {
	repo      adminRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdminService creates a new admin service instance.
func NewAdminService(repo adminRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// CheckAdmin matches the email against the directory, case-insensitively and
// with surrounding whitespace trimmed. A non-admin email is not an error.
func (s *AdminService) CheckAdmin(ctx context.Context, req dto.CheckAdminRequest) (*dto.CheckAdminResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Email is required")
	}

	admin, err := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &dto.CheckAdminResponse{IsAdmin: false}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Server error")
	}

	return &dto.CheckAdminResponse{
		IsAdmin:  true,
		Location: admin.Location,
		Type:     string(admin.Type),
	}, nil
}

// ListLocations returns the distinct location names for one location type,
// served from the directory cache when possible. Cache failures fall back to
// the database.
func (s *AdminService) ListLocations(ctx context.Context, locationType models.LocationType) ([]dto.LocationName, error) {
	cacheKey := "directory:" + string(locationType)

	var cached []dto.LocationName
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	locations, err := s.repo.DistinctLocations(ctx, locationType)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error fetching locations")
	}

	names := make([]dto.LocationName, 0, len(locations))
	for _, location := range locations {
		names = append(names, dto.LocationName{Name: location})
	}

	if err := s.cache.Set(ctx, cacheKey, names, 0); err != nil {
		s.logger.Warn("directory cache set failed", zap.String("key", cacheKey), zap.Error(err))
	}

	return names, nil
}
