package container

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/quiz-survey-api/internal/answer"
	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	"github.com/saulo-duarte/quiz-survey-api/internal/question"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/router"
	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
	"github.com/saulo-duarte/quiz-survey-api/internal/user"
)

type Container struct {
	Store             *storage.Store
	UserContainer     *user.UserContainer
	QuizContainer     *quiz.QuizContainer
	QuestionContainer *question.QuestionContainer
	AnswerContainer   *answer.AnswerContainer
}

func New(cfg *config.Config) (*Container, error) {
	config.InitLogger(cfg.LogLevel)

	store, err := storage.Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	userContainer := user.NewUserContainer(store)
	quizContainer := quiz.NewQuizContainer(store)
	questionContainer := question.NewQuestionContainer(store, quizContainer.Repo)

	answerContainer := answer.NewAnswerContainer(
		store,
		userContainer.Repo,
		quizContainer.Repo,
		questionContainer.Repo,
	)

	return &Container{
		Store:             store,
		UserContainer:     userContainer,
		QuizContainer:     quizContainer,
		QuestionContainer: questionContainer,
		AnswerContainer:   answerContainer,
	}, nil
}

// Models lists every table of the schema, referenced tables first. Role,
// QuizCategory and Option are seeded outside the API.
func Models() []interface{} {
	return []interface{}{
		&user.Role{},
		&user.User{},
		&quiz.QuizCategory{},
		&quiz.Quiz{},
		&question.Question{},
		&question.Option{},
		&answer.Answer{},
	}
}

func (c *Container) Migrate(ctx context.Context) error {
	config.Logger.Info("Migrating database schema...")
	return c.Store.Migrate(ctx, Models()...)
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		QuizHandler:     c.QuizContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		AnswerHandler:   c.AnswerContainer.Handler,
	})
}

func (c *Container) Close() error {
	return c.Store.Close()
}
