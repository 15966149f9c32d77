package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/aakhmedov/freightpay/internal/logger"
	"go.uber.org/zap"
)

type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func NewGzipMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Encoding") == "gzip" {
				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					http.Error(w, "invalid gzip", http.StatusBadRequest)
					return
				}
				defer func(gz *gzip.Reader) {
					if err := gz.Close(); err != nil {
						logger.Log.Error("failed to close gzip reader", zap.Error(err))
					}
				}(gz)
				r.Body = gz
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gzw := gzip.NewWriter(w)
			defer func(gzw *gzip.Writer) {
				if err := gzw.Close(); err != nil {
					logger.Log.Error("failed to close gzip writer", zap.Error(err))
				}
			}(gzw)

			w.Header().Set("Content-Encoding", "gzip")
			next.ServeHTTP(gzipResponseWriter{Writer: gzw, ResponseWriter: w}, r)
		})
	}
}
