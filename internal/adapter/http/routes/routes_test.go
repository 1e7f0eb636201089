package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel_budget/internal/adapter/http/handlers"
	"travel_budget/internal/adapter/http/handlers/mocks"
	"travel_budget/internal/adapter/http/middleware"
	"travel_budget/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRouteAuthorization(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserUseCase(ctrl)
	budgets := mocks.NewMockIBudgetUseCase(ctrl)
	areas := mocks.NewMockIAreaUseCase(ctrl)
	dashboard := mocks.NewMockIDashboardUseCase(ctrl)
	rates := mocks.NewMockIExchangeRateUseCase(ctrl)

	users.EXPECT().GetByID(gomock.Any(), "req").Return(entities.UserProfile{ID: "req", Role: entities.UserRoleRequester}, nil).AnyTimes()
	users.EXPECT().GetByID(gomock.Any(), "rev").Return(entities.UserProfile{ID: "rev", Role: entities.UserRoleApprover}, nil).AnyTimes()

	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	authed := v1.Group("", middleware.Authenticate(users))
	addBudgetRoutes(authed, handlers.NewBudgetHandler(budgets), handlers.NewDashboardHandler(dashboard))
	addAdminRoutes(authed, handlers.NewAreaHandler(areas), handlers.NewExchangeRateHandler(rates), handlers.NewUserHandler(users))

	cases := []struct {
		name   string
		method string
		path   string
		user   string
		want   int
	}{
		{name: "ping is public", method: http.MethodGet, path: "/v1/ping", want: http.StatusOK},
		{name: "budgets need identity", method: http.MethodGet, path: "/v1/budgets", want: http.StatusUnauthorized},
		{name: "requester cannot approve", method: http.MethodPatch, path: "/v1/budgets/b-1/approve", user: "req", want: http.StatusForbidden},
		{name: "requester cannot see dashboard", method: http.MethodGet, path: "/v1/dashboard", user: "req", want: http.StatusForbidden},
		{name: "approver cannot manage areas", method: http.MethodPut, path: "/v1/areas/Sales", user: "rev", want: http.StatusForbidden},
		{name: "approver cannot list users", method: http.MethodGet, path: "/v1/users", user: "rev", want: http.StatusForbidden},
		{name: "approver cannot change rate sources", method: http.MethodPut, path: "/v1/exchange-rates/config/ARS", user: "rev", want: http.StatusForbidden},
		{name: "anyone reads own profile", method: http.MethodGet, path: "/v1/users/me", user: "req", want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.user != "" {
				req.Header.Set(middleware.HeaderUserID, tc.user)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
