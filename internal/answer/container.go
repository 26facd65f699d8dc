package answer

import (
	"github.com/saulo-duarte/quiz-survey-api/internal/question"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
	"github.com/saulo-duarte/quiz-survey-api/internal/user"
)

type AnswerContainer struct {
	Handler *Handler
}

func NewAnswerContainer(
	store *storage.Store,
	userRepo user.UserRepository,
	quizRepo quiz.QuizRepository,
	questionRepo question.QuestionRepository,
) *AnswerContainer {
	repo := NewRepository(store)
	service := NewService(store, repo, userRepo, quizRepo, questionRepo)
	handler := NewHandler(service)

	return &AnswerContainer{
		Handler: handler,
	}
}
