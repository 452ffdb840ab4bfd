package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/neatify/neatify-api/internal/models"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
)

// ClerkMetadata carries the profile fields Clerk nests under public_metadata.
type ClerkMetadata struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ClerkClaims is the shape of a Clerk-issued session token.
type ClerkClaims struct {
	jwt.RegisteredClaims
	PublicMetadata ClerkMetadata `json:"public_metadata"`
}

// AuthService verifies bearer tokens against the Clerk key set. Verification
// fails closed: any signature, expiry, claim, or key-fetch problem rejects
// the token.
type AuthService struct {
	keyfunc jwt.Keyfunc
	leeway  time.Duration
	logger  *zap.Logger
}

// NewAuthService constructs the verifier. keyfunc resolves signing keys,
// typically from a background-refreshing remote JWK set.
func NewAuthService(keyfunc jwt.Keyfunc, leeway time.Duration, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{keyfunc: keyfunc, leeway: leeway, logger: logger}
}

// Verify validates the token and extracts the caller's identity. Clerk signs
// session tokens with RS256; everything else is rejected.
func (s *AuthService) Verify(tokenString string) (*models.Identity, error) {
	if s.keyfunc == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "identity verifier not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClerkClaims{}, s.keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	)
	if err != nil {
		s.logger.Debug("token verification failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "Invalid token")
	}

	claims, ok := token.Claims.(*ClerkClaims)
	if !ok || claims.Subject == "" || claims.PublicMetadata.Email == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Invalid token")
	}

	return &models.Identity{
		Subject: claims.Subject,
		Email:   claims.PublicMetadata.Email,
		Name:    claims.PublicMetadata.Name,
	}, nil
}
