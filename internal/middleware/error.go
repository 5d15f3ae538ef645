package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"ticket-tracker/internal/models"
)

// Recovery converts panics into a 500 error envelope and logs the stack
// trace
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(models.ErrorResponse{
						ErrorType:    string(models.ErrorTypeInternal),
						ErrorMessage: "internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// NotFoundHandler handles unmatched routes with the JSON error envelope
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			ErrorType:    string(models.ErrorTypeNotFound),
			ErrorMessage: "route not found",
		})
	})
}

// MethodNotAllowedHandler handles known routes hit with the wrong method
func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			ErrorType:    string(models.ErrorTypeValidation),
			ErrorMessage: "method not allowed",
		})
	})
}
