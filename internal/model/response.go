package model

import "time"

// ShortenRequest тело запроса на создание и обновление ссылки
type ShortenRequest struct {
	URL string `json:"url"`
}

// MappingResponse представление записи в ответах API
type MappingResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ShortCode string    `json:"shortCode"`
	ShortURL  string    `json:"shortUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatsResponse представление статистики по короткому коду
type StatsResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	ShortCode   string    `json:"shortCode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	AccessCount int64     `json:"accessCount"`
}
