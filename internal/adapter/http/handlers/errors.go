package handlers

import (
	"net/http"

	"travel_budget/internal/adapter/http/middleware"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/infrastructure/monitoring"
	"travel_budget/pkg"
	"travel_budget/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)
)

// respondError writes appErr. Server-side failures are also logged and sent to
// Sentry with the route they happened on.
func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(appErr)
		logger.L().Error("[http][handler] request failed",
			zap.String("route", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
		monitoring.CaptureError(c.Request.Context(), appErr, map[string]string{
			"route": c.FullPath(),
			"code":  appErr.Code,
		})
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// currentUser returns the authenticated profile, answering 401 when the
// request went around the auth middleware.
func currentUser(c *gin.Context) (entities.UserProfile, bool) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthenticated)
	}
	return u, ok
}
