package service

import (
	"math/rand"
	"sync"

	"github.com/avc-dev/shortener-stats/internal/model"
)

const (
	CodeLength   = 6
	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator генерирует случайные коды фиксированной длины.
// Уникальность не гарантируется, ее обеспечивает MappingService вместе с хранилищем.
type CodeGenerator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		random: rand.New(rand.NewSource(rand.Int63())),
	}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() model.Code {
	result := make([]byte, CodeLength)

	// rand.Rand не потокобезопасен
	g.mu.Lock()
	for i := range result {
		result[i] = AllowedChars[g.random.Intn(len(AllowedChars))]
	}
	g.mu.Unlock()

	return model.Code(result)
}
