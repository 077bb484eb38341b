package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateCode_Format проверяет длину и алфавит кода
func TestGenerateCode_Format(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator()

	for range 1000 {
		// Act
		code := generator.GenerateCode()

		// Assert
		require.Len(t, code, CodeLength)
		for _, char := range code.String() {
			assert.True(t, strings.ContainsRune(AllowedChars, char),
				"Code contains invalid character: %c", char)
		}
	}
}

func TestAllowedChars(t *testing.T) {
	assert.Len(t, AllowedChars, 62)

	seen := make(map[rune]struct{}, len(AllowedChars))
	for _, char := range AllowedChars {
		_, duplicate := seen[char]
		assert.False(t, duplicate, "duplicate symbol %c", char)
		seen[char] = struct{}{}
	}
}

// TestGenerateCode_UsesWholeAlphabet проверяет что за достаточное число генераций
// встречаются все символы алфавита
func TestGenerateCode_UsesWholeAlphabet(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator()
	seen := make(map[rune]struct{}, len(AllowedChars))

	// Act
	for range 5000 {
		for _, char := range generator.GenerateCode().String() {
			seen[char] = struct{}{}
		}
	}

	// Assert
	assert.Len(t, seen, len(AllowedChars))
}

// TestGenerateCode_Concurrent проверяет безопасность конкурентного использования
func TestGenerateCode_Concurrent(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator()
	const goroutines = 16
	const perGoroutine = 200

	codes := make(chan model.Code, goroutines*perGoroutine)
	var wg sync.WaitGroup

	// Act
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				codes <- generator.GenerateCode()
			}
		}()
	}
	wg.Wait()
	close(codes)

	// Assert
	count := 0
	for code := range codes {
		assert.Len(t, code, CodeLength)
		count++
	}
	assert.Equal(t, goroutines*perGoroutine, count)
}
