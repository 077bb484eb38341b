package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось подобрать свободный код
	// за максимальное количество попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")
)
