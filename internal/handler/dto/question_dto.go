package dto

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}
}

// NewQuestionListResponse создает список DTO вопросов
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	response := make([]QuestionResponse, len(questions))
	for i := range questions {
		response[i] = NewQuestionResponse(&questions[i])
	}
	return response
}

// QuestionPageResponse — ответ на GET /questions
type QuestionPageResponse struct {
	Categories      map[uint]string    `json:"categories"`
	TotalQuestions  int64              `json:"total_questions"`
	Questions       []QuestionResponse `json:"questions"`
	CurrentCategory string             `json:"currentCategory"`
}

// CategoryQuestionsResponse — ответ на GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory string             `json:"currentCategory"`
}

// SearchResponse — ответ на поиск по POST /questions
type SearchResponse struct {
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"totalQuestions"`
}

// CreateQuestionResponse — ответ на создание вопроса
type CreateQuestionResponse struct {
	Success         bool               `json:"success"`
	Created         uint               `json:"created"`
	QuestionCreated string             `json:"question_created"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
}

// DeleteQuestionResponse — ответ на удаление вопроса
type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// NextQuestionResponse — ответ игрового endpoint, пока пул не исчерпан
type NextQuestionResponse struct {
	Question QuestionResponse `json:"question"`
}

// QuizCompleteResponse — сигнал завершения игры (пул исчерпан)
type QuizCompleteResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse — единый конверт ошибки: success=false, код и фиксированное
// сообщение. Внутренние детали ошибок наружу не отдаются.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse создает конверт ошибки для заданного HTTP-статуса
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Status:  status,
		Message: message,
	}
}
