package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/testcreator/quiz-system/docs"
	"github.com/testcreator/quiz-system/internal/api/handler"
	"github.com/testcreator/quiz-system/internal/api/middleware"
	"github.com/testcreator/quiz-system/internal/core/domain"
	"github.com/testcreator/quiz-system/internal/core/ports"
)

// RouterDeps carries the constructed services the router wires to routes.
type RouterDeps struct {
	AuthService  ports.AuthService
	TokenService ports.TokenService
	QuizService  ports.QuizService
	Mongo        *mongo.Database
	Redis        *redis.Client
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("quiz_system"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	quizHandler := handler.NewQuizHandler(deps.QuizService)
	questionHandler := handler.NewQuestionHandler(deps.QuizService)
	answerHandler := handler.NewAnswerHandler(deps.QuizService)
	resultHandler := handler.NewResultHandler(deps.QuizService)

	authRequired := middleware.Auth(deps.TokenService)
	registeredOnly := middleware.RBAC(domain.RoleRegisteredUser, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Quiz browsing (public) ---
	e.GET("/quizzes/latest", quizHandler.Latest)
	e.GET("/quizzes/by-title", quizHandler.ByTitle)
	e.GET("/quizzes/random", quizHandler.Random)
	e.GET("/quizzes/:id", quizHandler.Get)
	e.GET("/quizzes/:id/questions", questionHandler.List)
	e.GET("/quizzes/:id/results", resultHandler.List)
	e.GET("/questions/:id/answers", answerHandler.List)

	// --- Quiz authoring (token required) ---
	authoring := e.Group("", authRequired, registeredOnly)
	authoring.POST("/quizzes", quizHandler.Create)
	authoring.PUT("/quizzes/:id", quizHandler.Update)
	authoring.DELETE("/quizzes/:id", quizHandler.Delete)
	authoring.POST("/quizzes/:id/questions", questionHandler.Create)
	authoring.PUT("/questions/:id", questionHandler.Update)
	authoring.DELETE("/questions/:id", questionHandler.Delete)
	authoring.POST("/questions/:id/answers", answerHandler.Create)
	authoring.PUT("/answers/:id", answerHandler.Update)
	authoring.DELETE("/answers/:id", answerHandler.Delete)
	authoring.POST("/quizzes/:id/results", resultHandler.Create)
	authoring.PUT("/results/:id", resultHandler.Update)
	authoring.DELETE("/results/:id", resultHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
