package hmacmiddleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/GarikMirzoyan/measurecolor/internal/security"
)

type HMACMiddleware struct {
	Key []byte
}

func NewHMACMiddleware(key string) *HMACMiddleware {
	return &HMACMiddleware{
		Key: []byte(key),
	}
}

// Middleware проверяет подпись тела запросов на запись и подписывает все ответы.
// GET-запросы дашборда и бейджей приходят из браузера без подписи.
func (h *HMACMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.Key) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodPost {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "cannot read body", http.StatusBadRequest)
				return
			}
			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(body))

			if !security.VerifyHMACSHA256(body, h.Key, r.Header.Get(security.HashHeader)) {
				http.Error(w, "invalid HMAC signature", http.StatusBadRequest)
				return
			}
		}

		rec := &responseWriterWithHash{
			ResponseWriter: w,
			buf:            &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rec, r)

		rec.Header().Set(security.HashHeader, security.ComputeHMACSHA256(rec.buf.Bytes(), h.Key))

		rec.ResponseWriter.WriteHeader(rec.statusCode)
		_, _ = rec.ResponseWriter.Write(rec.buf.Bytes())
	})
}

type responseWriterWithHash struct {
	http.ResponseWriter
	buf        *bytes.Buffer
	statusCode int
}

func (r *responseWriterWithHash) WriteHeader(statusCode int) {
	r.statusCode = statusCode
}

func (r *responseWriterWithHash) Write(b []byte) (int, error) {
	return r.buf.Write(b)
}
