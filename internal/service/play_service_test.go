package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

func poolOf(ids ...uint) []entity.Question {
	pool := make([]entity.Question, len(ids))
	for i, id := range ids {
		pool[i] = entity.Question{ID: id, Text: "Q"}
	}
	return pool
}

// ============================================================================
// Тесты для pickUnseen (чистая функция выбора)
// ============================================================================

func TestPickUnseen_NeverReturnsExcluded(t *testing.T) {
	// Arrange
	pool := poolOf(1, 2, 3, 4, 5)
	excluded := []uint{2, 4}

	svc := NewPlayService(nil)

	// Act & Assert: при любом результате генератора исключённые id не возвращаются
	for seed := 0; seed < 100; seed++ {
		q := pickUnseen(pool, excluded, svc.randInt)
		require.NotNil(t, q)
		assert.NotContains(t, excluded, q.ID, "Выбор не должен возвращать исключённый id")
	}
}

func TestPickUnseen_Exhausted(t *testing.T) {
	// Arrange: все кандидаты уже показаны
	pool := poolOf(1, 2)
	excluded := []uint{1, 2}

	// Act
	q := pickUnseen(pool, excluded, func(n int) int { t.Fatal("randInt не должен вызываться при пустом подмножестве"); return 0 })

	// Assert: nil с первого же вызова, без попыток выбора
	assert.Nil(t, q, "Полностью исключённый пул — Exhausted")
}

func TestPickUnseen_EmptyPool(t *testing.T) {
	q := pickUnseen(nil, nil, func(n int) int { return 0 })
	assert.Nil(t, q, "Пустой пул — Exhausted")
}

func TestPickUnseen_SingleCandidate(t *testing.T) {
	// Arrange: остался ровно один непоказанный вопрос
	pool := poolOf(1, 2, 3)
	excluded := []uint{1, 3}

	// Act
	q := pickUnseen(pool, excluded, func(n int) int {
		assert.Equal(t, 1, n, "Выбор должен идти по подмножеству из одного кандидата")
		return 0
	})

	// Assert
	require.NotNil(t, q)
	assert.Equal(t, uint(2), q.ID)
}

func TestPickUnseen_DrawOverEligibleSubsetOnly(t *testing.T) {
	// Arrange: из 5 кандидатов 2 исключены — выбор строго по 3 оставшимся
	pool := poolOf(10, 20, 30, 40, 50)
	excluded := []uint{20, 40}

	picked := make(map[uint]bool)

	// Act: перебираем все индексы подмножества
	for i := 0; i < 3; i++ {
		idx := i
		q := pickUnseen(pool, excluded, func(n int) int {
			assert.Equal(t, 3, n, "Размер выборки — ровно |pool \\ excluded|")
			return idx
		})
		require.NotNil(t, q)
		picked[q.ID] = true
	}

	// Assert: покрыты все оставшиеся кандидаты
	assert.Equal(t, map[uint]bool{10: true, 30: true, 50: true}, picked)
}

func TestPickUnseen_CoversAllRemaining(t *testing.T) {
	// Свойство: при многократных розыгрышах каждый непоказанный вопрос
	// рано или поздно выпадает (ненулевая вероятность у каждого)
	pool := poolOf(1, 2, 3, 4, 5, 6)
	excluded := []uint{6}

	svc := NewPlayService(nil)
	picked := make(map[uint]bool)
	for i := 0; i < 500; i++ {
		q := pickUnseen(pool, excluded, svc.randInt)
		require.NotNil(t, q)
		picked[q.ID] = true
	}

	assert.Len(t, picked, 5, "За 500 розыгрышей должны выпасть все 5 оставшихся вопросов")
	assert.False(t, picked[6])
}

// ============================================================================
// Тесты для PlayService.NextQuestion
// ============================================================================

func TestPlayService_NextQuestion_WithCategory(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("GetByCategory", uint(1)).Return(poolOf(1, 2), nil)

	svc := NewPlayService(mockQuestionRepo)

	// Act
	q, err := svc.NextQuestion(uintPtr(1), []uint{1})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, uint(2), q.ID)
	mockQuestionRepo.AssertNotCalled(t, "GetAll")
}

func TestPlayService_NextQuestion_AllCategories(t *testing.T) {
	// Arrange: categoryID == nil — пул из всех категорий
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("GetAll").Return(poolOf(1, 2, 3), nil)

	svc := NewPlayService(mockQuestionRepo)

	// Act
	q, err := svc.NextQuestion(nil, nil)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, q)
	mockQuestionRepo.AssertNotCalled(t, "GetByCategory")
}

func TestPlayService_NextQuestion_Exhausted(t *testing.T) {
	// Arrange: previous_questions покрывает весь пул
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("GetByCategory", uint(2)).Return(poolOf(7, 8), nil)

	svc := NewPlayService(mockQuestionRepo)

	// Act
	q, err := svc.NextQuestion(uintPtr(2), []uint{7, 8})

	// Assert: (nil, nil) — завершение игры, не ошибка
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestPlayService_NextQuestion_RepoError(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("GetAll").Return(nil, assert.AnError)

	svc := NewPlayService(mockQuestionRepo)

	// Act
	q, err := svc.NextQuestion(nil, nil)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, q)
}
