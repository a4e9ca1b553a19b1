package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avenira/orient-api/internal/adapter/httpserver"
)

func TestRequestIDGenerated(t *testing.T) {
	h := httpserver.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.WriteHeader(http.StatusOK)
	}))

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rw.Header().Get("X-Request-Id"))
}

func TestRequestIDPreserved(t *testing.T) {
	h := httpserver.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-Id", "given-id")
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, r)
	assert.Equal(t, "given-id", rw.Header().Get("X-Request-Id"))
}

func TestRecovererCatchesPanic(t *testing.T) {
	h := httpserver.Recoverer()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rw := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rw.Result().StatusCode)
}

func TestSecurityHeaders(t *testing.T) {
	h := httpserver.SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", rw.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rw.Header().Get("X-Frame-Options"))
}
