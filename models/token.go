package models

import "time"

// TokenKind selects the secret and TTL a token is signed with.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// TokenPayload is the identity carried by access and refresh tokens.
type TokenPayload struct {
	ID              uint      `json:"id"`
	Email           string    `json:"email"`
	Roles           []string  `json:"roles"`
	PermissionCodes []string  `json:"permissionCodes"`
	IssuedAt        time.Time `json:"iat"`
	ExpiresAt       time.Time `json:"exp"`
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// HasAnyPermission reports whether at least one of the codes was granted.
func (p *TokenPayload) HasAnyPermission(codes []string) bool {
	return containsAny(p.PermissionCodes, codes)
}

// HasAnyRole reports whether at least one of the role names was granted.
func (p *TokenPayload) HasAnyRole(roles []string) bool {
	return containsAny(p.Roles, roles)
}

func containsAny(granted, wanted []string) bool {
	for _, w := range wanted {
		for _, g := range granted {
			if g == w {
				return true
			}
		}
	}
	return false
}
