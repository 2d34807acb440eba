package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
)

func TestMethodNotAllowedListsAllowedMethods(t *testing.T) {
	mux := chi.NewRouter()
	mux.Get("/reservations", func(w http.ResponseWriter, r *http.Request) {})
	mux.Post("/reservations", func(w http.ResponseWriter, r *http.Request) {})
	mux.MethodNotAllowed(methodNotAllowed(mux))

	req := httptest.NewRequest(http.MethodDelete, "/reservations", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get(constant.RequestHeaderAllow))

	var body struct {
		Error string `json:"error"`
	}

	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DELETE not allowed for /reservations. Allowed: GET, POST", body.Error)
}

func TestAllowedMethods(t *testing.T) {
	mux := chi.NewRouter()
	mux.Get("/tables", func(w http.ResponseWriter, r *http.Request) {})
	mux.Put("/tables/{id}/seat", func(w http.ResponseWriter, r *http.Request) {})
	mux.Delete("/tables/{id}/seat", func(w http.ResponseWriter, r *http.Request) {})

	assert.Equal(t, "GET", allowedMethods(mux, "/tables"))
	assert.Equal(t, "PUT, DELETE", allowedMethods(mux, "/tables/3/seat"))
	assert.Equal(t, "", allowedMethods(mux, "/nowhere"))
}
