package app

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shortener-stats/internal/config"
	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, client *http.Client, method, url, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		res.Body.Close()
	})

	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	return v
}

// TestRouter_Lifecycle проходит по всем маршрутам API поверх хранилища в памяти
func TestRouter_Lifecycle(t *testing.T) {
	app := newTestApp(t, config.NewDefaultConfig())
	server := httptest.NewServer(app.router)
	defer server.Close()
	client := server.Client()

	// создание
	res := doRequest(t, client, http.MethodPost, server.URL+"/shorten", `{"url":"https://example.com"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decode[model.MappingResponse](t, res)
	assert.Len(t, created.ShortCode, 6)
	assert.Equal(t, "https://example.com", created.URL)
	assert.Equal(t, "http://localhost:8080/shorten/"+created.ShortCode, created.ShortURL)
	assert.Equal(t, created.ShortURL, res.Header.Get("Location"))
	codeURL := server.URL + "/shorten/" + created.ShortCode

	// статистика свежей записи
	res = doRequest(t, client, http.MethodGet, codeURL+"/stats", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, int64(0), decode[model.StatsResponse](t, res).AccessCount)

	// обращение учитывается
	res = doRequest(t, client, http.MethodGet, codeURL, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	resolved := decode[model.MappingResponse](t, res)
	assert.Equal(t, created.ID, resolved.ID)
	assert.Equal(t, "https://example.com", resolved.URL)

	// обновление
	res = doRequest(t, client, http.MethodPut, codeURL, `{"url":"https://updated.com"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	updated := decode[model.MappingResponse](t, res)
	assert.Equal(t, "https://updated.com", updated.URL)
	assert.Equal(t, created.ShortCode, updated.ShortCode)
	assert.Equal(t, created.ID, updated.ID)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	for range 2 {
		res = doRequest(t, client, http.MethodGet, codeURL, "")
		require.Equal(t, http.StatusOK, res.StatusCode)
	}

	res = doRequest(t, client, http.MethodGet, codeURL+"/stats", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	stats := decode[model.StatsResponse](t, res)
	assert.Equal(t, int64(3), stats.AccessCount)
	assert.Equal(t, "https://updated.com", stats.URL)

	// удаление
	res = doRequest(t, client, http.MethodDelete, codeURL, "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	for _, tc := range []struct{ method, url, body string }{
		{http.MethodGet, codeURL, ""},
		{http.MethodGet, codeURL + "/stats", ""},
		{http.MethodPut, codeURL, `{"url":"https://again.com"}`},
		{http.MethodDelete, codeURL, ""},
	} {
		res = doRequest(t, client, tc.method, tc.url, tc.body)
		assert.Equal(t, http.StatusNotFound, res.StatusCode, "%s %s", tc.method, tc.url)
	}
}

func TestRouter_Errors(t *testing.T) {
	app := newTestApp(t, config.NewDefaultConfig())
	server := httptest.NewServer(app.router)
	defer server.Close()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "invalid url", method: http.MethodPost, path: "/shorten", body: `{"url":"not a url"}`, expectedStatus: http.StatusBadRequest},
		{name: "empty url", method: http.MethodPost, path: "/shorten", body: `{"url":""}`, expectedStatus: http.StatusBadRequest},
		{name: "malformed json", method: http.MethodPost, path: "/shorten", body: `{`, expectedStatus: http.StatusBadRequest},
		{name: "unknown code", method: http.MethodGet, path: "/shorten/zzzzzz", expectedStatus: http.StatusNotFound},
		{name: "method not allowed", method: http.MethodPatch, path: "/shorten/zzzzzz", expectedStatus: http.StatusMethodNotAllowed},
		{name: "ping memory store", method: http.MethodGet, path: "/ping", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := doRequest(t, server.Client(), tt.method, server.URL+tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, res.StatusCode)
		})
	}
}

// TestRouter_Gzip проверяет сжатые запросы и ответы
func TestRouter_Gzip(t *testing.T) {
	app := newTestApp(t, config.NewDefaultConfig())
	server := httptest.NewServer(app.router)
	defer server.Close()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"url":"https://example.com"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req, err := http.NewRequest(http.MethodPost, server.URL+"/shorten", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	// Transport с явным Accept-Encoding не распаковывает ответ сам
	res, err := server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "gzip", res.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(res.Body)
	require.NoError(t, err)
	var created model.MappingResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&created))
	assert.Equal(t, "https://example.com", created.URL)
}

func TestRouter_CORS(t *testing.T) {
	app := newTestApp(t, config.NewDefaultConfig())
	server := httptest.NewServer(app.router)
	defer server.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/shorten", strings.NewReader(`{"url":"https://example.com"}`))
	require.NoError(t, err)
	req.Header.Set("Origin", "https://client.example")
	req.Header.Set("Content-Type", "application/json")

	res, err := server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, res.Header.Get("Access-Control-Expose-Headers"), "Location")
}
