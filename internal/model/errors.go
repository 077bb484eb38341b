package model

import "errors"

var (
	// ErrNotFound возвращается, когда для короткого кода нет записи
	ErrNotFound = errors.New("mapping not found")
	// ErrShortCodeTaken возвращается хранилищем при нарушении уникальности короткого кода
	ErrShortCodeTaken = errors.New("short code already taken")
)
