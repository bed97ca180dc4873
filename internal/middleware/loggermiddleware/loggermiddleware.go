package loggermiddleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

type statusWriter struct {
	http.ResponseWriter
	status int
	size   int64
}

func (ww *statusWriter) WriteHeader(status int) {
	ww.status = status
	ww.ResponseWriter.WriteHeader(status)
}

func (ww *statusWriter) Write(p []byte) (int, error) {
	if ww.status == 0 {
		ww.status = http.StatusOK
	}
	size, err := ww.ResponseWriter.Write(p)
	ww.size += int64(size)
	return size, err
}

// Middleware для логирования запросов и ответов
func Logger(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Идентификатор клиента сохраняем, иначе выдаём новый
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(RequestIDHeader, requestID)
		}
		w.Header().Set(RequestIDHeader, requestID)

		ww := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(ww, r)

		if ww.status == 0 {
			ww.status = http.StatusOK
		}

		logger.Info("Handled request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("remote_addr", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
			zap.Int("status", ww.status),
			zap.Int64("response_size", ww.size),
		)
	})
}
