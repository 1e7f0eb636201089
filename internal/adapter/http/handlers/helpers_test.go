package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"travel_budget/internal/adapter/http/middleware"
	"travel_budget/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	requester = entities.UserProfile{ID: "u-1", Email: "ana@miempresa.com", Role: entities.UserRoleRequester}
	approver  = entities.UserProfile{ID: "u-2", Email: "rev@miempresa.com", Role: entities.UserRoleApprover}
	admin     = entities.UserProfile{ID: "u-3", Email: "root@miempresa.com", Role: entities.UserRoleAdmin}
)

// routerAs returns an engine where every request is authenticated as user.
func routerAs(user entities.UserProfile) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.IdentityKey, user)
		c.Next()
	})
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
