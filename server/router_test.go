package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"astrocal-server/astro"
	"astrocal-server/config"
	redisdao "astrocal-server/dao/redis"
	"astrocal-server/db"
	"astrocal-server/server/handlers"
	services "astrocal-server/service"
	"astrocal-server/state"
)

func newTestRouter() *mux.Router {
	loc := config.ObserverLocation()
	mockClient := db.NewMockRedisClient(context.Background())
	sessionDao := redisdao.NewRedisSessionDAO(mockClient)
	now := func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, loc) }
	controller := state.NewController(sessionDao, state.WithNow(now))
	astronomyApi := astro.NewEphemerisClientMock(loc)
	almanacService := services.NewAlmanacService(astronomyApi, nil, loc)
	almanacHandler := handlers.NewAlmanacHandler(controller, almanacService, astronomyApi)

	muxRouter := mux.NewRouter()
	appRouter := NewRouter(almanacHandler, muxRouter)
	appRouter.RegisterRoutes()
	return muxRouter
}

func TestRegisterRoutes(t *testing.T) {
	muxRouter := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		contains   string
	}{
		{"Ping", "GET", "/ping", http.StatusOK, `"status":"pong"`},
		{"Almanac", "GET", "/v1/almanac?year=2024&month=3", http.StatusOK, `"almanac"`},
		{"Calendar Grid", "GET", "/v1/calendar/grid?year=2024&month=3", http.StatusOK, `"weeks"`},
		{"Moon Chart", "GET", "/v1/charts/moon-illumination?year=2024&month=3", http.StatusOK, "Moon Illumination"},
		{"Unknown Route", "GET", "/v1/unknown", http.StatusNotFound, ""},
		{"Wrong Method", "POST", "/v1/almanac", http.StatusMethodNotAllowed, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()
			muxRouter.ServeHTTP(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}
			if test.contains != "" && !strings.Contains(rr.Body.String(), test.contains) {
				t.Errorf("Expected body to contain %q, got %q", test.contains, rr.Body.String())
			}
		})
	}
}
