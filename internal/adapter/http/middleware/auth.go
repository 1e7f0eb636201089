package middleware

import (
	"errors"
	"net/http"
	"strings"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase"
	"travel_budget/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderUserID carries the user id asserted by the authenticating proxy.
	HeaderUserID = "X-User-ID"
	IdentityKey  = "identity"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
	errUnknownUser     = pkg.NewDomainErrorSimple("FORBIDDEN", "User has no profile", http.StatusForbidden)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this operation", http.StatusForbidden)
)

// Authenticate resolves the caller's profile from HeaderUserID and stores it
// under IdentityKey.
func Authenticate(users usecase.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if id == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		profile, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				c.AbortWithStatusJSON(errUnknownUser.HTTPStatus, errUnknownUser.ToHTTPError())
				return
			}
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			_ = c.Error(appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(IdentityKey, profile)
		c.Next()
	}
}

// RequireRoles lets the request through only when the authenticated user has
// one of roles.
func RequireRoles(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func CurrentUser(c *gin.Context) (entities.UserProfile, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return entities.UserProfile{}, false
	}
	u, ok := v.(entities.UserProfile)
	return u, ok
}
