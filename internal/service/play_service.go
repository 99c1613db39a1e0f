package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
)

// PlayService выбирает следующий вопрос для игровой сессии.
// Состояние сессии (уже показанные вопросы) сервис не хранит —
// клиент передаёт его с каждым запросом.
type PlayService struct {
	questionRepo repository.QuestionRepository

	// randInt подменяется в тестах; по умолчанию rand.IntN
	randInt func(n int) int
}

// NewPlayService создает новый игровой сервис
func NewPlayService(questionRepo repository.QuestionRepository) *PlayService {
	return &PlayService{
		questionRepo: questionRepo,
		randInt:      rand.IntN,
	}
}

// NextQuestion возвращает случайный вопрос пула, не входящий в previousIDs.
// categoryID == nil означает пул из всех категорий.
// Возвращает (nil, nil), когда весь пул уже показан — для вызывающего
// это завершение игры, а не ошибка.
func (s *PlayService) NextQuestion(categoryID *uint, previousIDs []uint) (*entity.Question, error) {
	var pool []entity.Question
	var err error

	if categoryID != nil {
		pool, err = s.questionRepo.GetByCategory(*categoryID)
	} else {
		pool, err = s.questionRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load question pool: %w", err)
	}

	return pickUnseen(pool, previousIDs, s.randInt), nil
}

// pickUnseen равномерно выбирает один элемент из pool \ excluded.
// Сначала строится подмножество ещё не показанных кандидатов, затем
// делается один случайный выбор по нему. Без цикла повторных попыток:
// время ограничено одним проходом, распределение равномерно по
// оставшимся кандидатам независимо от размера excluded.
// nil означает, что подходящих кандидатов не осталось.
func pickUnseen(pool []entity.Question, excluded []uint, randInt func(n int) int) *entity.Question {
	seen := make(map[uint]struct{}, len(excluded))
	for _, id := range excluded {
		seen[id] = struct{}{}
	}

	eligible := make([]*entity.Question, 0, len(pool))
	for i := range pool {
		if _, ok := seen[pool[i].ID]; !ok {
			eligible = append(eligible, &pool[i])
		}
	}

	if len(eligible) == 0 {
		return nil
	}

	return eligible[randInt(len(eligible))]
}
