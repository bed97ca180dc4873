package hmacmiddleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GarikMirzoyan/measurecolor/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	})
}

func TestHMACMiddleware_NoKey(t *testing.T) {
	handler := NewHMACMiddleware("").Middleware(echoHandler())

	req := httptest.NewRequest(http.MethodPost, "/update/", strings.NewReader("payload"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get(security.HashHeader))
}

func TestHMACMiddleware_ValidSignature(t *testing.T) {
	key := "secret"
	body := `{"metric":"coverage","component":"api","value":1}`
	handler := NewHMACMiddleware(key).Middleware(echoHandler())

	req := httptest.NewRequest(http.MethodPost, "/update/", strings.NewReader(body))
	req.Header.Set(security.HashHeader, security.ComputeHMACSHA256([]byte(body), []byte(key)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, body, rec.Body.String())
	assert.Equal(t, security.ComputeHMACSHA256([]byte(body), []byte(key)), rec.Header().Get(security.HashHeader))
}

func TestHMACMiddleware_InvalidSignature(t *testing.T) {
	handler := NewHMACMiddleware("secret").Middleware(echoHandler())

	for _, signature := range []string{"", "deadbeef", security.ComputeHMACSHA256([]byte("other"), []byte("secret"))} {
		req := httptest.NewRequest(http.MethodPost, "/update/", strings.NewReader("payload"))
		req.Header.Set(security.HashHeader, signature)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestHMACMiddleware_GetIsSignedNotVerified(t *testing.T) {
	handler := NewHMACMiddleware("secret").Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<svg/>"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/badge/coverage/api", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, security.ComputeHMACSHA256([]byte("<svg/>"), []byte("secret")), rec.Header().Get(security.HashHeader))
}
