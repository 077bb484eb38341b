package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// jsonHandler отвечает переданным статусом и JSON телом
func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

func TestGzipMiddleware_CompressesJSON(t *testing.T) {
	// Arrange
	handler := GzipMiddleware(zap.NewNop())(jsonHandler(http.StatusCreated, `{"url":"https://example.com"}`))
	req := httptest.NewRequest(http.MethodPost, "/shorten", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://example.com"}`, string(body))
}

func TestGzipMiddleware_LeavesResponseUncompressed(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		handler        http.Handler
		expectedStatus int
	}{
		{
			name:           "client does not accept gzip",
			handler:        jsonHandler(http.StatusOK, `{"ok":true}`),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error status",
			acceptEncoding: "gzip",
			handler:        jsonHandler(http.StatusNotFound, `{"ok":false}`),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "not JSON",
			acceptEncoding: "gzip",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				io.WriteString(w, "pong")
			}),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no content",
			acceptEncoding: "gzip",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}),
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()

			// Act
			GzipMiddleware(zap.NewNop())(tt.handler).ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Empty(t, w.Header().Get("Content-Encoding"))
		})
	}
}

func TestGzipMiddleware_DecompressesRequest(t *testing.T) {
	// Arrange
	var received string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received = string(data)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodPost, "/shorten", bytes.NewReader(gzipBytes(t, `{"url":"https://example.com"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	// Act
	GzipMiddleware(zap.NewNop())(next).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"url":"https://example.com"}`, received)
}

func TestGzipMiddleware_InvalidGzipRequest(t *testing.T) {
	// Arrange
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})
	req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader("plain text"))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	// Act
	GzipMiddleware(zap.NewNop())(next).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIsJSON(t *testing.T) {
	assert.True(t, isJSON("application/json"))
	assert.True(t, isJSON("application/json; charset=utf-8"))
	assert.True(t, isJSON("Application/JSON"))
	assert.False(t, isJSON("text/html"))
	assert.False(t, isJSON(""))
}
