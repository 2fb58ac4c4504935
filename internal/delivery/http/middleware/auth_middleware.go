package middleware

import (
	"strings"

	deliverycontext "fixly/internal/delivery/context"
	"fixly/internal/delivery/http/response"
	"fixly/internal/domain/entity"
	"fixly/internal/domain/service"
	"fixly/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies identity provider tokens and enforces roles.
// Tokens are minted by Firebase; this service never issues its own.
type AuthMiddleware struct {
	identity  service.IdentityProvider
	profileUC usecase.ProfileUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, profileUC usecase.ProfileUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, profileUC: profileUC}
}

// Authenticate validates the bearer token against the identity provider and
// stores the resulting uid on both the echo context and the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		uid, err := m.identity.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentityUID(c, uid)

		return next(c)
	}
}

// RequireAdmin checks that the authenticated identity resolves to a client
// profile carrying the admin role. It must be used AFTER Authenticate.
// Workers can never be admins; their table has no role column.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid := deliverycontext.GetIdentityUID(c)
		if uid == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
		}

		profile, err := m.profileUC.Resolve(c.Request().Context(), uid)
		if err != nil {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: no profile for identity")
		}

		if profile.Kind != entity.ProfileKindClient || profile.Client.Role != entity.RoleAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin role required")
		}

		return next(c)
	}
}

// GetIdentityUID returns the authenticated identity uid set by Authenticate.
func GetIdentityUID(c echo.Context) (string, bool) {
	uid := deliverycontext.GetIdentityUID(c)

	return uid, uid != ""
}
