package middleware

import (
	"fmt"
	"net/http"

	"travel_budget/internal/infrastructure/monitoring"
	"travel_budget/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500 and reports it.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		log.Error("[http] recovered from panic",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		monitoring.CaptureError(c.Request.Context(), err, map[string]string{
			"path":   c.FullPath(),
			"method": c.Request.Method,
		})
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
