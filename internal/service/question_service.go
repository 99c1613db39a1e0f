package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/pkg/pagination"
)

// AllCategoriesLabel — метка текущей категории, когда фильтр не применён
// (категория не указана или не существует).
const AllCategoriesLabel = "all"

// QuestionListing — результат разрешения списочного запроса:
// страница вопросов, общее количество строк выборки, каталог категорий
// и метка текущей категории для отображения.
type QuestionListing struct {
	Questions       []entity.Question
	Total           int64
	Catalog         map[uint]string
	CurrentCategory string
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// GetCategories возвращает каталог категорий в виде id -> название
func (s *QuestionService) GetCategories() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return entity.CatalogMap(categories), nil
}

// ListQuestions разрешает списочный запрос в страницу вопросов.
// categoryID == nil означает «без фильтра». Несуществующая категория —
// не ошибка: выборка деградирует до всех вопросов с меткой "all".
func (s *QuestionService) ListQuestions(page int, categoryID *uint) (*QuestionListing, error) {
	catalog, err := s.GetCategories()
	if err != nil {
		return nil, err
	}

	currentCategory := AllCategoriesLabel
	var questions []entity.Question

	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(*categoryID)
		switch {
		case err == nil:
			currentCategory = category.Type
			questions, err = s.questionRepo.GetByCategory(*categoryID)
			if err != nil {
				return nil, fmt.Errorf("failed to list questions for category %d: %w", *categoryID, err)
			}
		case errors.Is(err, apperrors.ErrNotFound):
			// Категория не существует — деградируем до полной выборки
			questions, err = s.questionRepo.GetAll()
			if err != nil {
				return nil, fmt.Errorf("failed to list questions: %w", err)
			}
		default:
			return nil, fmt.Errorf("failed to resolve category %d: %w", *categoryID, err)
		}
	} else {
		questions, err = s.questionRepo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
	}

	return &QuestionListing{
		Questions:       pagination.Page(questions, page),
		Total:           int64(len(questions)),
		Catalog:         catalog,
		CurrentCategory: currentCategory,
	}, nil
}

// ListByCategory возвращает страницу вопросов одной категории.
// В отличие от ListQuestions это строгий путь: несуществующая категория —
// ошибка ErrBadRequest, а не деградация до "all".
func (s *QuestionService) ListByCategory(categoryID uint, page int) (*QuestionListing, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("unknown category %d: %w", categoryID, apperrors.ErrBadRequest)
		}
		return nil, fmt.Errorf("failed to resolve category %d: %w", categoryID, err)
	}

	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}

	catalog, err := s.GetCategories()
	if err != nil {
		return nil, err
	}

	return &QuestionListing{
		Questions:       pagination.Page(questions, page),
		Total:           int64(len(questions)),
		Catalog:         catalog,
		CurrentCategory: category.Type,
	}, nil
}

// Search возвращает вопросы, текст которых содержит term как подстроку
// без учёта регистра. Фильтр по категории на поиск не влияет.
func (s *QuestionService) Search(term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.SearchByText(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// CreateQuestion валидирует и сохраняет новый вопрос.
// Возвращает страницу каталога после вставки (контракт create-ответа).
func (s *QuestionService) CreateQuestion(question *entity.Question, page int) (*QuestionListing, error) {
	if strings.TrimSpace(question.Text) == "" || strings.TrimSpace(question.Answer) == "" {
		return nil, fmt.Errorf("question and answer text are required: %w", apperrors.ErrValidation)
	}
	if !question.HasValidDifficulty() {
		return nil, fmt.Errorf("difficulty must be between %d and %d: %w",
			entity.MinDifficulty, entity.MaxDifficulty, apperrors.ErrValidation)
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	log.Printf("[QuestionService] Создан вопрос ID=%d (категория %d)", question.ID, question.CategoryID)

	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions after create: %w", err)
	}

	return &QuestionListing{
		Questions: pagination.Page(questions, page),
		Total:     int64(len(questions)),
	}, nil
}

// DeleteQuestion удаляет вопрос по id (ErrNotFound, если его нет)
func (s *QuestionService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	log.Printf("[QuestionService] Удалён вопрос ID=%d", id)
	return nil
}

// FullCatalog возвращает все вопросы и каталог категорий (для экспорта)
func (s *QuestionService) FullCatalog() ([]entity.Question, map[uint]string, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions: %w", err)
	}
	catalog, err := s.GetCategories()
	if err != nil {
		return nil, nil, err
	}
	return questions, catalog, nil
}
