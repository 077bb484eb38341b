package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/shortener-stats/internal/model"
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
}

// parseURL очищает строку и проверяет, что это абсолютный URL с поддерживаемой схемой
func parseURL(urlString string) (model.URL, error) {
	urlString = strings.TrimSpace(urlString)
	urlString = strings.Trim(urlString, `"'`)

	if urlString == "" {
		return "", ErrEmptyURL
	}

	parsedURL, err := url.Parse(urlString)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if !allowedSchemes[strings.ToLower(parsedURL.Scheme)] {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("%w: host is missing", ErrInvalidURL)
	}

	return model.URL(urlString), nil
}
