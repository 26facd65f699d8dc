package question

import (
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
)

type QuestionContainer struct {
	Repo    QuestionRepository
	Handler *Handler
}

func NewQuestionContainer(store *storage.Store, quizRepo quiz.QuizRepository) *QuestionContainer {
	repo := NewRepository(store)
	service := NewService(store, repo, quizRepo)
	handler := NewHandler(service)

	return &QuestionContainer{
		Repo:    repo,
		Handler: handler,
	}
}
