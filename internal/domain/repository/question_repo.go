package repository

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	Delete(id uint) error

	// GetAll возвращает все вопросы, упорядоченные по id по возрастанию
	GetAll() ([]entity.Question, error)
	// GetByCategory возвращает вопросы категории, упорядоченные по id
	GetByCategory(categoryID uint) ([]entity.Question, error)
	// SearchByText ищет вопросы по подстроке текста без учёта регистра
	SearchByText(term string) ([]entity.Question, error)
	// Count возвращает общее количество вопросов
	Count() (int64, error)
}
