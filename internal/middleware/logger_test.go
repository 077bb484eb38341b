package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		handler        http.HandlerFunc
		expectedStatus int64
		expectedSize   int64
	}{
		{
			name: "implicit OK",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hello"))
			},
			expectedStatus: http.StatusOK,
			expectedSize:   5,
		},
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedSize:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			core, logs := observer.New(zapcore.InfoLevel)
			handler := chimw.RequestID(Logger(zap.New(core))(tt.handler))
			req := httptest.NewRequest(http.MethodGet, "/shorten/abc123", nil)
			w := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(w, req)

			// Assert
			entries := logs.FilterMessage("HTTP request").All()
			require.Len(t, entries, 1)

			fields := entries[0].ContextMap()
			assert.Equal(t, http.MethodGet, fields["method"])
			assert.Equal(t, "/shorten/abc123", fields["uri"])
			assert.Equal(t, tt.expectedStatus, fields["status"])
			assert.Equal(t, tt.expectedSize, fields["size"])
			assert.NotEmpty(t, fields["request_id"])
		})
	}
}
