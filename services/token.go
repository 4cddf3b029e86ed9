package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant-directory/metrics"
	"restaurant-directory/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RefreshRotationWindow: a refresh token with less time left than this is
// replaced on refresh; otherwise the caller keeps using the one it sent.
const RefreshRotationWindow = 20 * time.Minute

type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type tokenClaims struct {
	UserID          uint             `json:"id"`
	Email           string           `json:"email"`
	Roles           []string         `json:"roles"`
	PermissionCodes []string         `json:"permissionCodes"`
	Kind            models.TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access and refresh tokens. It keeps no
// state, so issued tokens cannot be revoked before they expire.
type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenService(cfg TokenConfig) *TokenService {
	return &TokenService{cfg: cfg, now: time.Now}
}

func (s *TokenService) settings(kind models.TokenKind) ([]byte, time.Duration, error) {
	switch kind {
	case models.TokenAccess:
		return []byte(s.cfg.AccessSecret), s.cfg.AccessTTL, nil
	case models.TokenRefresh:
		return []byte(s.cfg.RefreshSecret), s.cfg.RefreshTTL, nil
	default:
		return nil, 0, fmt.Errorf("unknown token kind %q", kind)
	}
}

// Generate signs payload as a token of the given kind. IssuedAt and
// ExpiresAt on the payload are ignored and set from the kind's TTL.
func (s *TokenService) Generate(payload models.TokenPayload, kind models.TokenKind) (string, error) {
	secret, ttl, err := s.settings(kind)
	if err != nil {
		return "", err
	}
	now := s.now()
	claims := tokenClaims{
		UserID:          payload.ID,
		Email:           payload.Email,
		Roles:           payload.Roles,
		PermissionCodes: payload.PermissionCodes,
		Kind:            kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify checks signature, expiry and kind. Every failure is ErrInvalidToken.
func (s *TokenService) Verify(tokenString string, kind models.TokenKind) (*models.TokenPayload, error) {
	payload, err := s.verify(tokenString, kind)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues(string(kind), "failure").Inc()
		return nil, err
	}
	metrics.TokenVerificationsTotal.WithLabelValues(string(kind), "success").Inc()
	return payload, nil
}

func (s *TokenService) verify(tokenString string, kind models.TokenKind) (*models.TokenPayload, error) {
	secret, _, err := s.settings(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", models.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Kind != kind {
		return nil, models.ErrInvalidToken
	}

	payload := &models.TokenPayload{
		ID:              claims.UserID,
		Email:           claims.Email,
		Roles:           claims.Roles,
		PermissionCodes: claims.PermissionCodes,
		ExpiresAt:       claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	return payload, nil
}

// Refresh always mints a new access token. The refresh token is reissued
// only when fewer than RefreshRotationWindow minutes remain on it.
func (s *TokenService) Refresh(refreshToken string) (*models.TokenPair, error) {
	payload, err := s.Verify(refreshToken, models.TokenRefresh)
	if err != nil {
		return nil, err
	}

	access, err := s.Generate(*payload, models.TokenAccess)
	if err != nil {
		return nil, fmt.Errorf("%w: signing access token: %v", models.ErrInternal, err)
	}

	pair := &models.TokenPair{AccessToken: access, RefreshToken: refreshToken}
	remainingMinutes := int(payload.ExpiresAt.Sub(s.now()).Minutes())
	rotated := remainingMinutes < int(RefreshRotationWindow.Minutes())
	if rotated {
		pair.RefreshToken, err = s.Generate(*payload, models.TokenRefresh)
		if err != nil {
			return nil, fmt.Errorf("%w: signing refresh token: %v", models.ErrInternal, err)
		}
	}
	metrics.TokenRefreshesTotal.WithLabelValues(strconv.FormatBool(rotated)).Inc()
	return pair, nil
}

// IssuePair signs an access and a refresh token for the same identity.
func (s *TokenService) IssuePair(payload models.TokenPayload) (*models.TokenPair, error) {
	access, err := s.Generate(payload, models.TokenAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.Generate(payload, models.TokenRefresh)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
