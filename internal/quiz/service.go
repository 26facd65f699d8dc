package quiz

import (
	"context"

	"github.com/saulo-duarte/quiz-survey-api/internal/apperror"
	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

var ErrQuizNotFound = apperror.NotFound("Quiz")

type QuizService interface {
	CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error)
	ListQuizzes(ctx context.Context, page util.Page) ([]*Quiz, error)
	GetQuiz(ctx context.Context, id int64) (*Quiz, error)
}

type quizService struct {
	scope storage.Scope
	repo  QuizRepository
}

func NewService(scope storage.Scope, repo QuizRepository) QuizService {
	return &quizService{
		scope: scope,
		repo:  repo,
	}
}

// CreateQuiz inserts the quiz as given. category_id is stored without checking
// that the category exists.
func (s *quizService) CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)
	log.Info("Creating quiz...")

	quiz := &Quiz{
		Title:       *dto.Title,
		Description: dto.Description,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		Status:      dto.Status,
		CategoryID:  *dto.CategoryID,
	}

	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, quiz)
	})
	if err != nil {
		log.Errorf("Failed to create quiz: %v", err)
		return nil, apperror.Internal(err)
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz created successfully")
	return quiz, nil
}

func (s *quizService) ListQuizzes(ctx context.Context, page util.Page) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	var quizzes []*Quiz
	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		var err error
		quizzes, err = s.repo.List(ctx, page.Skip, page.Limit)
		return err
	})
	if err != nil {
		log.Errorf("Failed to list quizzes: %v", err)
		return nil, apperror.Internal(err)
	}
	return quizzes, nil
}

func (s *quizService) GetQuiz(ctx context.Context, id int64) (*Quiz, error) {
	log := config.WithContext(ctx)

	var quiz *Quiz
	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		var err error
		quiz, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		log.Errorf("Failed to get quiz: %v", err)
		return nil, apperror.Internal(err)
	}
	if quiz == nil {
		log.WithField("quiz_id", id).Warn("Quiz not found")
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}
