package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edupires/examboard/config"
	"github.com/edupires/examboard/database"
	_ "github.com/edupires/examboard/docs" // Swagger docs - auto-generated
	adminctrl "github.com/edupires/examboard/internal/controller/admin"
	studentctrl "github.com/edupires/examboard/internal/controller/student"
	teacherctrl "github.com/edupires/examboard/internal/controller/teacher"
	"github.com/edupires/examboard/internal/logger"
	"github.com/edupires/examboard/internal/model"
	"github.com/edupires/examboard/internal/repository"
	"github.com/edupires/examboard/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Exam Grading API
// @version 1.0
// @description Teachers author questions and exams; students submit answers that are graded automatically (objective questions) or by a teacher (essays), with a final 0..10 grade per student per exam.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewExamRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewQuestionService,
			service.NewAutoGraderService,
			service.NewAnswerSubmissionService,
			service.NewGradingQueueService,
			service.NewScoreAggregatorService,
			service.NewExamService,
			service.NewUserService,
		),

		fx.Provide(
			teacherctrl.NewQuestionController,
			teacherctrl.NewGradingController,
			studentctrl.NewAnswerController,
			studentctrl.NewExamController,
			adminctrl.NewAdminController,
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
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

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

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	questionCtrl *teacherctrl.QuestionController,
	gradingCtrl *teacherctrl.GradingController,
	answerCtrl *studentctrl.AnswerController,
	examCtrl *studentctrl.ExamController,
	adminCtrl *adminctrl.AdminController,
) {
	api := router.Group("/api/v1")

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/students", adminCtrl.CreateStudent)
		adminGroup.GET("/students", adminCtrl.GetAllStudents)
		adminGroup.POST("/teachers", adminCtrl.CreateTeacher)
		adminGroup.GET("/teachers", adminCtrl.GetAllTeachers)
		adminGroup.POST("/exams", adminCtrl.CreateExam)
	}

	teacherGroup := api.Group("/teacher")
	{
		teacherGroup.POST("/questions", questionCtrl.CreateQuestion)
		teacherGroup.GET("/questions", questionCtrl.GetAllQuestions)
		teacherGroup.GET("/questions/:question_id", questionCtrl.GetQuestion)
		teacherGroup.PUT("/questions/:question_id", questionCtrl.UpdateQuestion)
		teacherGroup.DELETE("/questions/:question_id", questionCtrl.DeleteQuestion)

		teacherGroup.GET("/teachers/:teacher_id/corrections", gradingCtrl.ListCorrections)
		teacherGroup.PUT("/teachers/:teacher_id/corrections/:answer_id", gradingCtrl.GradeEssay)
	}

	studentGroup := api.Group("/student")
	{
		studentGroup.GET("/exams", examCtrl.GetAllExams)
		studentGroup.GET("/exams/:exam_id", examCtrl.GetExam)
		studentGroup.POST("/exams/:exam_id/students/:student_id/answers", answerCtrl.SubmitAnswer)
		studentGroup.GET("/exams/:exam_id/students/:student_id/answers", answerCtrl.ListAnswers)
		studentGroup.GET("/exams/:exam_id/students/:student_id/grade", answerCtrl.GetFinalGrade)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam grading API server starting on port %s", cfg.Server.Port)
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
		&model.Teacher{},
		&model.Student{},
		&model.Exam{},
		&model.ExamParticipation{},
		&model.Question{},
		&model.Choice{},
		&model.TrueFalseItem{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
