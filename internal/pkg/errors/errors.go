package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется для некорректных запросов
	// (отсутствуют обязательные связанные параметры, неверный формат тела).
	ErrBadRequest = errors.New("bad request")

	// ErrValidation используется для ошибок валидации входных данных
	// (семантически неполный payload при создании вопроса).
	ErrValidation = errors.New("validation failed")
)
