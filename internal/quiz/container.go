package quiz

import "github.com/saulo-duarte/quiz-survey-api/internal/storage"

type QuizContainer struct {
	Repo    QuizRepository
	Handler *Handler
}

func NewQuizContainer(store *storage.Store) *QuizContainer {
	repo := NewRepository(store)
	service := NewService(store, repo)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Handler: handler,
	}
}
