package user

import "github.com/saulo-duarte/quiz-survey-api/internal/storage"

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

func NewUserContainer(store *storage.Store) *UserContainer {
	repo := NewRepository(store)
	service := NewService(store, repo)
	handler := NewHandler(service)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
