package services

import (
	"testing"
	"time"

	"restaurant-directory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() models.TokenPayload {
	return models.TokenPayload{
		ID:              7,
		Email:           "ana@example.com",
		Roles:           []string{"user"},
		PermissionCodes: []string{"users_read"},
	}
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.Generate(testPayload(), models.TokenAccess)
	require.NoError(t, err)

	payload, err := svc.Verify(token, models.TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(7), payload.ID)
	assert.Equal(t, "ana@example.com", payload.Email)
	assert.Equal(t, []string{"user"}, payload.Roles)
	assert.Equal(t, []string{"users_read"}, payload.PermissionCodes)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), payload.ExpiresAt, 5*time.Second)
}

func TestTokenService_TokensAreUnique(t *testing.T) {
	svc := newTestTokenService()

	a, err := svc.Generate(testPayload(), models.TokenAccess)
	require.NoError(t, err)
	b, err := svc.Generate(testPayload(), models.TokenAccess)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTokenService_VerifyRejects(t *testing.T) {
	svc := newTestTokenService()
	access, err := svc.Generate(testPayload(), models.TokenAccess)
	require.NoError(t, err)

	other := NewTokenService(TokenConfig{
		AccessSecret: "another-secret", RefreshSecret: "x", AccessTTL: time.Minute, RefreshTTL: time.Hour,
	})
	foreign, err := other.Generate(testPayload(), models.TokenAccess)
	require.NoError(t, err)

	cases := map[string]struct {
		token string
		kind  models.TokenKind
	}{
		"garbage":            {"not-a-jwt", models.TokenAccess},
		"empty":              {"", models.TokenAccess},
		"tampered":           {access + "x", models.TokenAccess},
		"foreign secret":     {foreign, models.TokenAccess},
		"access as refresh":  {access, models.TokenRefresh},
		"unknown token kind": {access, models.TokenKind("session")},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(tc.token, tc.kind)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrInvalidToken)
			assert.ErrorIs(t, err, models.ErrUnauthenticated)
		})
	}
}

func TestTokenService_KindClaimIsChecked(t *testing.T) {
	// Same secret for both kinds: only the kind claim tells them apart.
	svc := NewTokenService(TokenConfig{
		AccessSecret: "shared", RefreshSecret: "shared", AccessTTL: time.Minute, RefreshTTL: time.Hour,
	})
	refresh, err := svc.Generate(testPayload(), models.TokenRefresh)
	require.NoError(t, err)

	_, err = svc.Verify(refresh, models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrInvalidToken)

	_, err = svc.Verify(refresh, models.TokenRefresh)
	assert.NoError(t, err)
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestTokenService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := svc.Generate(testPayload(), models.TokenAccess)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token, models.TokenAccess)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenService_RefreshKeepsLongLivedRefreshToken(t *testing.T) {
	svc := newTestTokenService()
	pair, err := svc.IssuePair(testPayload())
	require.NoError(t, err)

	refreshed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshToken, refreshed.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, refreshed.AccessToken)

	payload, err := svc.Verify(refreshed.AccessToken, models.TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", payload.Email)
	assert.Equal(t, []string{"user"}, payload.Roles)
}

func TestTokenService_RefreshRotationWindow(t *testing.T) {
	cases := []struct {
		name       string
		refreshTTL time.Duration
		rotated    bool
	}{
		{"25 minutes left", 25 * time.Minute, false},
		{"20 minutes left", 20 * time.Minute, true}, // 19 whole minutes once a second has passed
		{"10 minutes left", 10 * time.Minute, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewTokenService(TokenConfig{
				AccessSecret:  "a",
				RefreshSecret: "r",
				AccessTTL:     15 * time.Minute,
				RefreshTTL:    tc.refreshTTL,
			})
			issuedAt := time.Now()
			svc.now = func() time.Time { return issuedAt }
			refresh, err := svc.Generate(testPayload(), models.TokenRefresh)
			require.NoError(t, err)

			svc.now = func() time.Time { return issuedAt.Add(time.Second) }
			pair, err := svc.Refresh(refresh)
			require.NoError(t, err)

			if tc.rotated {
				assert.NotEqual(t, refresh, pair.RefreshToken)
				_, err := svc.Verify(pair.RefreshToken, models.TokenRefresh)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, refresh, pair.RefreshToken)
			}
		})
	}
}

func TestTokenService_RefreshRejectsAccessToken(t *testing.T) {
	svc := newTestTokenService()
	access, err := svc.Generate(testPayload(), models.TokenAccess)
	require.NoError(t, err)

	_, err = svc.Refresh(access)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}
