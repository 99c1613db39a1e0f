package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/handler"
	"github.com/yourusername/trivia-bank/internal/middleware"
	pgRepo "github.com/yourusername/trivia-bank/internal/repository/postgres"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции (схема + категории)
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	playService := service.NewPlayService(questionRepo)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService)
	playHandler := handler.NewPlayHandler(playService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: фронтенд викторины ходит с любого origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.RequestID())

	// Rate limiter для мутирующих endpoints. Redis опционален:
	// без него сервис работает, лимиты просто не применяются.
	writeLimit := func(c *gin.Context) { c.Next() }
	if cfg.Redis.Addr != "" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis: %v. Rate limiting disabled.", err)
		} else {
			log.Println("Successfully connected to Redis")
			rateLimiter := middleware.NewRateLimiter(redisClient)
			writeLimit = rateLimiter.Limit(middleware.DefaultWriteRateLimitConfig())
			defer redisClient.Close()
		}
	}

	// Настраиваем маршруты API
	categories := router.Group("/categories")
	{
		categories.GET("", questionHandler.GetCategories)

		categoryWithID := categories.Group("/:id")
		categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
		{
			categoryWithID.GET("/questions", questionHandler.ListByCategory)
		}
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.GET("/export", questionHandler.ExportQuestions)
		questions.POST("", writeLimit, questionHandler.CreateOrSearch)

		questionWithID := questions.Group("/:id")
		questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
		{
			questionWithID.DELETE("", writeLimit, questionHandler.DeleteQuestion)
		}
	}

	router.POST("/quizzes/next", playHandler.NextQuestion)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждём SIGINT или SIGTERM для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
