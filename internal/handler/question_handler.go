package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuestionHandler обрабатывает запросы каталога вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// parsePage извлекает номер страницы из query. Отсутствующее или
// нечисловое значение — страница 1.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// parseCategoryFilter извлекает необязательный фильтр категории.
// Отсутствующее или нечисловое значение — nil, то есть «без фильтра».
func parseCategoryFilter(c *gin.Context) *uint {
	raw := c.Query("category")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	categoryID := uint(id)
	return &categoryID
}

// GetCategories возвращает каталог категорий
// GET /categories
func (h *QuestionHandler) GetCategories(c *gin.Context) {
	catalog, err := h.questionService.GetCategories()
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": catalog})
}

// ListQuestions возвращает страницу вопросов с необязательным фильтром
// по категории
// GET /questions?page=N&category=C
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	listing, err := h.questionService.ListQuestions(parsePage(c), parseCategoryFilter(c))
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionPageResponse{
		Categories:      listing.Catalog,
		TotalQuestions:  listing.Total,
		Questions:       dto.NewQuestionListResponse(listing.Questions),
		CurrentCategory: listing.CurrentCategory,
	})
}

// ListByCategory возвращает страницу вопросов одной категории.
// Несуществующая категория здесь — ошибка 400 (строгий путь).
// GET /categories/:id/questions
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	listing, err := h.questionService.ListByCategory(categoryID, parsePage(c))
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionListResponse(listing.Questions),
		TotalQuestions:  listing.Total,
		CurrentCategory: listing.CurrentCategory,
	})
}

// DeleteQuestion удаляет вопрос по id
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		h.handleQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{
		Success: true,
		ID:      questionID,
	})
}

// CreateOrSearchRequest — тело POST /questions. Один endpoint обслуживает
// и поиск, и создание: непустой searchTerm переключает в режим поиска.
// Поля создания — указатели, чтобы отличать «не передано» от нулевого
// значения при валидации.
type CreateOrSearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty *int    `json:"difficulty"`
	Category   *uint   `json:"category"`
}

// CreateOrSearch обрабатывает POST /questions: поиск при наличии
// searchTerm, иначе создание вопроса
func (h *QuestionHandler) CreateOrSearch(c *gin.Context) {
	var req CreateOrSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Bad Request"))
		return
	}

	if req.SearchTerm != nil && *req.SearchTerm != "" {
		h.search(c, *req.SearchTerm)
		return
	}

	h.create(c, &req)
}

// search возвращает вопросы, содержащие подстроку (без учёта регистра)
func (h *QuestionHandler) search(c *gin.Context, term string) {
	questions, err := h.questionService.Search(term)
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Questions:      dto.NewQuestionListResponse(questions),
		TotalQuestions: len(questions),
	})
}

// create валидирует payload и сохраняет вопрос.
// Отсутствие любого обязательного поля — 422 без обращения к БД.
func (h *QuestionHandler) create(c *gin.Context, req *CreateOrSearchRequest) {
	if req.Question == nil || req.Answer == nil || req.Difficulty == nil || req.Category == nil {
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Unprocessable"))
		return
	}

	question := &entity.Question{
		Text:       *req.Question,
		Answer:     *req.Answer,
		Difficulty: *req.Difficulty,
		CategoryID: *req.Category,
	}

	listing, err := h.questionService.CreateQuestion(question, parsePage(c))
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateQuestionResponse{
		Success:         true,
		Created:         question.ID,
		QuestionCreated: question.Text,
		Questions:       dto.NewQuestionListResponse(listing.Questions),
		TotalQuestions:  listing.Total,
	})
}

// ExportQuestions экспортирует каталог вопросов в CSV или Excel формате
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, catalog, err := h.questionService.FullCatalog()
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, catalog, filename)
	default:
		h.exportCSV(c, questions, catalog, filename)
	}
}

// exportCSV пишет каталог в CSV с корректным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, catalog map[uint]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Question", "Answer", "Difficulty", "Category"})

	for _, q := range questions {
		writer.Write([]string{
			strconv.Itoa(int(q.ID)),
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			strconv.Itoa(q.Difficulty),
			catalog[q.CategoryID],
		})
	}
}

// exportXLSX пишет каталог в Excel через StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, catalog map[uint]string, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal Server Error"))
		return
	}

	headers := []interface{}{"ID", "Question", "Answer", "Difficulty", "Category"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		cell := fmt.Sprintf("A%d", i+2) // Первая строка — заголовки
		row := []interface{}{q.ID, sanitizeForExcel(q.Text), sanitizeForExcel(q.Answer), q.Difficulty, catalog[q.CategoryID]}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// handleQuestionError превращает ошибки сервисов в единый конверт ответа.
// Сырые детали ошибок БД наружу не уходят — только фиксированные сообщения.
func (h *QuestionHandler) handleQuestionError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Not Found"))
	} else if errors.Is(err, apperrors.ErrBadRequest) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Bad Request"))
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Unprocessable"))
	} else {
		log.Printf("ERROR: Internal server error in QuestionHandler: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal Server Error"))
	}
}
