package question

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quiz-survey-api/internal/apperror"
	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
)

var (
	ErrQuestionNotFound = apperror.NotFound("Question")
	ErrQuizNotFound     = quiz.ErrQuizNotFound
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	GetQuestion(ctx context.Context, id int64) (*Question, error)
}

type questionService struct {
	scope    storage.Scope
	repo     QuestionRepository
	quizRepo quiz.QuizRepository
}

func NewService(scope storage.Scope, repo QuestionRepository, quizRepo quiz.QuizRepository) QuestionService {
	return &questionService{
		scope:    scope,
		repo:     repo,
		quizRepo: quizRepo,
	}
}

func (s *questionService) CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	q := &Question{
		QuizID:       *dto.QuizID,
		Text:         *dto.Text,
		QuestionType: dto.QuestionType,
	}

	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		exists, err := s.quizRepo.Exists(ctx, q.QuizID)
		if err != nil {
			log.WithError(err).Error("Failed to look up quiz for question")
			return apperror.Internal(err)
		}
		if !exists {
			log.WithField("quiz_id", q.QuizID).Warn("Quiz not found for new question")
			return ErrQuizNotFound
		}

		if err := s.repo.Create(ctx, q); err != nil {
			if storage.IsForeignKey(err) {
				return ErrQuizNotFound
			}
			log.WithError(err).Error("Failed to create question")
			return apperror.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"question_id": q.ID,
		"quiz_id":     q.QuizID,
	}).Info("Question created successfully")
	return q, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id int64) (*Question, error) {
	log := config.WithContext(ctx)

	var q *Question
	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		var err error
		q, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to get question")
		return nil, apperror.Internal(err)
	}
	if q == nil {
		log.WithField("question_id", id).Warn("Question not found")
		return nil, ErrQuestionNotFound
	}
	return q, nil
}
