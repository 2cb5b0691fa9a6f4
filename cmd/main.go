package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/reeduca/simulado-api/config"
	"github.com/reeduca/simulado-api/database"
	_ "github.com/reeduca/simulado-api/docs" // Swagger docs - auto-generated
	userctrl "github.com/reeduca/simulado-api/internal/controller/user"
	"github.com/reeduca/simulado-api/internal/logger"
	"github.com/reeduca/simulado-api/internal/model"
	"github.com/reeduca/simulado-api/internal/repository"
	"github.com/reeduca/simulado-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Simulado API
// @version 1.0
// @description Quiz attempt engine for timed multiple-choice assessments: start, navigate with autosave, finalize with server-authoritative scoring, review results.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuizSetRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
		),

		fx.Provide(
			service.NewCatalogService,
			service.NewAttemptService,
		),

		fx.Provide(
			userctrl.NewQuizController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Funnel gin request logs through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
) {
	apiGroup := router.Group("/api/v1")
	{
		quizSets := apiGroup.Group("/quiz-sets")
		quizSets.GET("", quizCtrl.ListQuizSets)
		quizSets.GET("/:slug", quizCtrl.GetQuizSet)
		quizSets.GET("/:slug/resume", quizCtrl.ResumeAttempt)
		quizSets.POST("/:slug/attempts", quizCtrl.StartAttempt)
		quizSets.GET("/:slug/my-attempts", quizCtrl.GetMyAttempts)

		attempts := apiGroup.Group("/attempts")
		attempts.PUT("/:attempt_id/answers", quizCtrl.RecordAnswer)
		attempts.POST("/:attempt_id/finish", quizCtrl.FinishAttempt)
		attempts.GET("/:attempt_id/result", quizCtrl.GetAttemptResult)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Simulado API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.QuizSet{},
		&model.Question{},
		&model.QuizSetQuestion{},
		&model.Attempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
