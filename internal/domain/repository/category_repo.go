package repository

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории в этом сервисе только читаются.
type CategoryRepository interface {
	// GetAll возвращает все категории, упорядоченные по id
	GetAll() ([]entity.Category, error)
	// GetByID возвращает категорию по id (apperrors.ErrNotFound, если её нет)
	GetByID(id uint) (*entity.Category, error)
}
