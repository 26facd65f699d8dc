package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/quiz-survey-api/docs"
	"github.com/saulo-duarte/quiz-survey-api/internal/answer"
	"github.com/saulo-duarte/quiz-survey-api/internal/middlewares"
	"github.com/saulo-duarte/quiz-survey-api/internal/question"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	QuizHandler     *quiz.Handler
	QuestionHandler *question.Handler
	AnswerHandler   *answer.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/users", user.Routes(cfg.UserHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Mount("/questions", question.Routes(cfg.QuestionHandler))
	r.Mount("/answers", answer.Routes(cfg.AnswerHandler))

	return r
}
