package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/service"
)

// PlayHandler обрабатывает игровой endpoint викторины
type PlayHandler struct {
	playService *service.PlayService
}

// NewPlayHandler создает новый игровой обработчик
func NewPlayHandler(playService *service.PlayService) *PlayHandler {
	return &PlayHandler{
		playService: playService,
	}
}

// QuizCategory — выбранная категория игровой сессии.
// ID == nil означает «все категории»; нулевой id принимается как тот же
// смысл для совместимости со старыми клиентами.
type QuizCategory struct {
	ID   *uint  `json:"id"`
	Type string `json:"type"`
}

// NextQuestionRequest — тело запроса следующего вопроса.
// Оба поля обязательны: их отсутствие — 400, до обращения к сервису.
type NextQuestionRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions *[]uint       `json:"previous_questions"`
}

// NextQuestion возвращает случайный непоказанный вопрос или сигнал
// завершения игры, когда пул исчерпан
// POST /quizzes/next
func (h *PlayHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Bad Request"))
		return
	}

	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Bad Request"))
		return
	}

	categoryID := req.QuizCategory.ID
	if categoryID != nil && *categoryID == 0 {
		categoryID = nil // 0 исторически означал «все категории»
	}

	question, err := h.playService.NextQuestion(categoryID, *req.PreviousQuestions)
	if err != nil {
		h.handlePlayError(c, err)
		return
	}

	// Пул исчерпан — завершение игры, обычный успешный ответ
	if question == nil {
		c.JSON(http.StatusOK, dto.QuizCompleteResponse{Success: true})
		return
	}

	c.JSON(http.StatusOK, dto.NextQuestionResponse{
		Question: dto.NewQuestionResponse(question),
	})
}

// handlePlayError превращает ошибки игрового сервиса в конверт ответа
func (h *PlayHandler) handlePlayError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Not Found"))
	} else if errors.Is(err, apperrors.ErrBadRequest) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Bad Request"))
	} else {
		log.Printf("ERROR: Internal server error in PlayHandler: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal Server Error"))
	}
}
