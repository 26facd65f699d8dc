package testutil

import (
	"net/http"

	"github.com/saulo-duarte/quiz-survey-api/internal/answer"
	"github.com/saulo-duarte/quiz-survey-api/internal/question"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/router"
	"github.com/saulo-duarte/quiz-survey-api/internal/user"
)

// NewRouter wires the production handlers and services onto db.
func NewRouter(db *MemDB) http.Handler {
	userService := user.NewService(db, db.UserRepo())
	quizService := quiz.NewService(db, db.QuizRepo())
	questionService := question.NewService(db, db.QuestionRepo(), db.QuizRepo())
	answerService := answer.NewService(db, db.AnswerRepo(), db.UserRepo(), db.QuizRepo(), db.QuestionRepo())

	return router.New(router.RouterConfig{
		UserHandler:     user.NewHandler(userService),
		QuizHandler:     quiz.NewHandler(quizService),
		QuestionHandler: question.NewHandler(questionService),
		AnswerHandler:   answer.NewHandler(answerService),
	})
}
