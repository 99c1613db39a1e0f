package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/service"
)

// newPlayHandler собирает PlayHandler поверх fake-репозитория вопросов
func newPlayHandler(questions []entity.Question) *PlayHandler {
	repo := &fakeQuestionRepo{questions: questions}
	return NewPlayHandler(service.NewPlayService(repo))
}

// quizBody формирует тело POST /quizzes/next
func quizBody(categoryID *uint, previous []uint) map[string]interface{} {
	category := map[string]interface{}{"type": ""}
	if categoryID != nil {
		category["id"] = *categoryID
	}
	return map[string]interface{}{
		"quiz_category":      category,
		"previous_questions": previous,
	}
}

func TestNextQuestion_ReturnsUnseenQuestion(t *testing.T) {
	questions := sampleQuestions(3)
	handler := newPlayHandler(questions)

	c, w := newTestGinContext("POST", "/quizzes/next", quizBody(nil, []uint{1, 2}))
	handler.NextQuestion(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)

	question, ok := resp["question"].(map[string]interface{})
	require.True(t, ok, "Ответ должен содержать объект question")
	assert.Equal(t, float64(3), question["id"], "Единственный непоказанный вопрос — id=3")
	assert.NotEmpty(t, question["question"])
	assert.NotEmpty(t, question["answer"])
}

func TestNextQuestion_CategoryFilter(t *testing.T) {
	questions := []entity.Question{
		{ID: 1, Text: "q1", Answer: "a1", Difficulty: 1, CategoryID: 1},
		{ID: 2, Text: "q2", Answer: "a2", Difficulty: 1, CategoryID: 2},
		{ID: 3, Text: "q3", Answer: "a3", Difficulty: 1, CategoryID: 2},
	}
	handler := newPlayHandler(questions)
	categoryID := uint(2)

	c, w := newTestGinContext("POST", "/quizzes/next", quizBody(&categoryID, []uint{2}))
	handler.NextQuestion(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)

	question := resp["question"].(map[string]interface{})
	assert.Equal(t, float64(3), question["id"])
	assert.Equal(t, float64(2), question["category"])
}

func TestNextQuestion_PoolExhausted(t *testing.T) {
	handler := newPlayHandler(sampleQuestions(2))

	c, w := newTestGinContext("POST", "/quizzes/next", quizBody(nil, []uint{1, 2}))
	handler.NextQuestion(c)

	// Все вопросы показаны — завершение игры, не ошибка
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	_, hasQuestion := resp["question"]
	assert.False(t, hasQuestion, "При исчерпании пула вопрос не возвращается")
}

func TestNextQuestion_EmptyPool(t *testing.T) {
	handler := newPlayHandler(nil)

	c, w := newTestGinContext("POST", "/quizzes/next", quizBody(nil, []uint{}))
	handler.NextQuestion(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
}

func TestNextQuestion_ZeroCategoryMeansAll(t *testing.T) {
	questions := []entity.Question{
		{ID: 1, Text: "q1", Answer: "a1", Difficulty: 1, CategoryID: 1},
		{ID: 2, Text: "q2", Answer: "a2", Difficulty: 1, CategoryID: 2},
	}
	handler := newPlayHandler(questions)
	zero := uint(0)

	c, w := newTestGinContext("POST", "/quizzes/next", quizBody(&zero, []uint{1}))
	handler.NextQuestion(c)

	// id=0 — легаси-обозначение «все категории»
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	question := resp["question"].(map[string]interface{})
	assert.Equal(t, float64(2), question["id"])
}

func TestNextQuestion_ValidationErrors(t *testing.T) {
	handler := &PlayHandler{} // nil service — до него дело не дойдет

	tests := []struct {
		name string
		body interface{}
	}{
		{
			name: "empty body",
			body: map[string]interface{}{},
		},
		{
			name: "missing quiz_category",
			body: map[string]interface{}{"previous_questions": []uint{}},
		},
		{
			name: "missing previous_questions",
			body: map[string]interface{}{"quiz_category": map[string]interface{}{"id": 1, "type": "Science"}},
		},
		{
			name: "body is not an object",
			body: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext("POST", "/quizzes/next", tt.body)
			handler.NextQuestion(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, float64(http.StatusBadRequest), resp["status"])
			assert.Equal(t, "Bad Request", resp["message"])
		})
	}
}

func TestHandlePlayError(t *testing.T) {
	handler := &PlayHandler{}

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         apperrors.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "bad request",
			err:         apperrors.ErrBadRequest,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bad Request",
		},
		{
			name:        "unknown error",
			err:         assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext("POST", "/test", nil)
			handler.handlePlayError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, tt.wantMessage, resp["message"])
		})
	}
}
