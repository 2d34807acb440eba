package table_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel/mocks"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/handlers/table"
)

func TestRouterRegistersTableRoutes(t *testing.T) {
	handler := table.New(nil, mocks.NewOtel())

	mux := chi.NewRouter()
	handler.Router(mux)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/tables"},
		{http.MethodGet, "/tables"},
		{http.MethodGet, "/tables/3"},
		{http.MethodPut, "/tables/3/seat"},
		{http.MethodDelete, "/tables/3/seat"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.True(t, mux.Match(chi.NewRouteContext(), tt.method, tt.path))
		})
	}
}
