package model

// Code короткий код, под которым хранится ссылка
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный адрес, на который указывает короткий код
type URL string

func (U URL) String() string {
	return string(U)
}
