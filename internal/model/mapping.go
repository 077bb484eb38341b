package model

import "time"

// Mapping представляет сопоставление короткого кода и оригинального URL
type Mapping struct {
	ID          string
	URL         URL
	ShortCode   Code
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AccessCount int64
}

// MappingStats снимок записи для статистики, не влияет на счетчик обращений
type MappingStats struct {
	ID          string
	URL         URL
	ShortCode   Code
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AccessCount int64
}

// Stats возвращает снимок записи
func (m Mapping) Stats() MappingStats {
	return MappingStats{
		ID:          m.ID,
		URL:         m.URL,
		ShortCode:   m.ShortCode,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		AccessCount: m.AccessCount,
	}
}

// MappingEntry представляет запись сопоставления в файле хранилища
type MappingEntry struct {
	ID          string    `json:"uuid"`
	ShortCode   string    `json:"short_url"`
	URL         string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AccessCount int64     `json:"access_count"`
}

// ToEntry преобразует запись в формат файлового хранилища
func (m Mapping) ToEntry() MappingEntry {
	return MappingEntry{
		ID:          m.ID,
		ShortCode:   string(m.ShortCode),
		URL:         string(m.URL),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		AccessCount: m.AccessCount,
	}
}

// ToMapping восстанавливает запись из формата файлового хранилища
func (e MappingEntry) ToMapping() Mapping {
	return Mapping{
		ID:          e.ID,
		URL:         URL(e.URL),
		ShortCode:   Code(e.ShortCode),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		AccessCount: e.AccessCount,
	}
}
