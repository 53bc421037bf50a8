package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"kurvalgom/config"
	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"
)

const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS256 signed JWTs.
type jwtService struct {
	secret []byte           // Secret key for signing session tokens.
	ttl    time.Duration    // Time-to-live for session tokens.
	now    func() time.Time // Clock used for iat/exp and expiry checks.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue creates a signed session token for the user.
func (s *jwtService) Issue(user *entity.User) (string, *entity.Identity, error) {
	if user == nil || user.ID == uuid.Nil {
		return "", nil, errors.New("cannot issue a token without a user")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),            // Subject (who the token is for)
			IssuedAt:  jwt.NewNumericDate(issuedAt), // Issued At
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign token")
	}

	identity, err := identityFromClaims(&claims)
	if err != nil {
		return "", nil, err
	}

	return token, identity, nil
}

// Validate checks signature, algorithm and expiry of a token string.
func (s *jwtService) Validate(tokenString string) (*entity.Identity, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, false
	}

	identity, err := identityFromClaims(claims)
	if err != nil {
		return nil, false
	}

	return identity, true
}

// TokenTTL returns the configured duration for session tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}

func identityFromClaims(claims *service.Claims) (*entity.Identity, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "parse subject")
	}

	identity := &entity.Identity{
		UserID:   userID,
		Username: claims.Username,
		Email:    claims.Email,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}
