package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"restaurant-directory/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Policy is the access requirement declared for a route when it is
// registered. The zero value means "any valid access token".
type Policy struct {
	Public      bool
	Permissions []string
	Roles       []string
}

// Public marks a route reachable without a token.
func Public() *Policy { return &Policy{Public: true} }

// Authenticated requires a valid access token and nothing else.
func Authenticated() *Policy { return &Policy{} }

// RequirePermissions allows callers holding at least one of the codes.
func RequirePermissions(codes ...string) *Policy { return &Policy{Permissions: codes} }

// RequireRoles allows callers holding at least one of the roles.
func RequireRoles(roles ...string) *Policy { return &Policy{Roles: roles} }

// ResolvePolicy picks the route's own policy and falls back to the group's.
func ResolvePolicy(route, group *Policy) Policy {
	if route != nil {
		return *route
	}
	if group != nil {
		return *group
	}
	return Policy{}
}

type TokenVerifier interface {
	Verify(token string, kind models.TokenKind) (*models.TokenPayload, error)
}

// Authorize evaluates a policy against an Authorization header value:
// public routes pass, then a Bearer access token must verify, then the
// identity must hold one of the required permissions or roles if any are
// declared. The identity is returned whenever the token verified.
func Authorize(verifier TokenVerifier, policy Policy, authHeader string) (*models.TokenPayload, error) {
	if policy.Public {
		return nil, nil
	}

	token, ok := bearerToken(authHeader)
	if !ok {
		return nil, fmt.Errorf("%w: Authorization header required (Bearer <token>)", models.ErrUnauthenticated)
	}

	identity, err := verifier.Verify(token, models.TokenAccess)
	if err != nil {
		if !errors.Is(err, models.ErrUnauthenticated) {
			err = fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
		}
		return nil, err
	}

	if len(policy.Permissions) == 0 && len(policy.Roles) == 0 {
		return identity, nil
	}
	if len(policy.Permissions) > 0 && identity.HasAnyPermission(policy.Permissions) {
		return identity, nil
	}
	if len(policy.Roles) > 0 && identity.HasAnyRole(policy.Roles) {
		return identity, nil
	}
	return identity, fmt.Errorf("%w: %s", models.ErrForbidden, describe(policy))
}

// Guard applies Authorize to every request and stores the identity in the
// request context.
func Guard(verifier TokenVerifier, policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := Authorize(verifier, policy, c.GetHeader("Authorization"))
		if err != nil {
			status := http.StatusUnauthorized
			message := "Invalid or expired token"
			switch {
			case errors.Is(err, models.ErrForbidden):
				status = http.StatusForbidden
				message = "Access denied. " + strings.TrimPrefix(err.Error(), models.ErrForbidden.Error()+": ")
			case !errors.Is(err, models.ErrInvalidToken):
				message = "Authorization header required (Bearer <token>)"
			}
			zap.L().Debug("Request denied", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}
		if identity != nil {
			c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func describe(p Policy) string {
	var parts []string
	if len(p.Permissions) > 0 {
		parts = append(parts, "required permission(s): "+strings.Join(p.Permissions, ", "))
	}
	if len(p.Roles) > 0 {
		parts = append(parts, "required role(s): "+strings.Join(p.Roles, ", "))
	}
	return strings.Join(parts, "; ")
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity *models.TokenPayload) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the identity Guard attached to the request context.
func IdentityFrom(ctx context.Context) (*models.TokenPayload, bool) {
	identity, ok := ctx.Value(identityKey{}).(*models.TokenPayload)
	return identity, ok && identity != nil
}
