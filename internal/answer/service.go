package answer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quiz-survey-api/internal/apperror"
	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	"github.com/saulo-duarte/quiz-survey-api/internal/question"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
	"github.com/saulo-duarte/quiz-survey-api/internal/user"
)

var (
	ErrAnswerNotFound   = apperror.NotFound("Answer")
	ErrUserNotFound     = user.ErrUserNotFound
	ErrQuizNotFound     = quiz.ErrQuizNotFound
	ErrQuestionNotFound = question.ErrQuestionNotFound
	ErrOptionRequired   = apperror.BadRequest("Option ID is required for non-text questions")
	ErrTextRequired     = apperror.BadRequest("Text answer is required for text questions")
)

type AnswerService interface {
	CreateAnswer(ctx context.Context, dto CreateAnswerDTO) (*Answer, error)
	GetAnswer(ctx context.Context, id int64) (*Answer, error)
}

type answerService struct {
	scope        storage.Scope
	repo         AnswerRepository
	userRepo     user.UserRepository
	quizRepo     quiz.QuizRepository
	questionRepo question.QuestionRepository
}

func NewService(
	scope storage.Scope,
	repo AnswerRepository,
	userRepo user.UserRepository,
	quizRepo quiz.QuizRepository,
	questionRepo question.QuestionRepository,
) AnswerService {
	return &answerService{
		scope:        scope,
		repo:         repo,
		userRepo:     userRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
	}
}

// validateAnswer checks, in order and stopping at the first failure: the user,
// the quiz and the question exist, then the answer carries the field the
// question type needs. The option itself is not looked up.
func (s *answerService) validateAnswer(ctx context.Context, log logrus.FieldLogger, dto CreateAnswerDTO) error {
	exists, err := s.userRepo.Exists(ctx, *dto.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to look up user for answer")
		return apperror.Internal(err)
	}
	if !exists {
		log.Warn("User not found for answer")
		return ErrUserNotFound
	}

	exists, err = s.quizRepo.Exists(ctx, *dto.QuizID)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz for answer")
		return apperror.Internal(err)
	}
	if !exists {
		log.Warn("Quiz not found for answer")
		return ErrQuizNotFound
	}

	q, err := s.questionRepo.GetByID(ctx, *dto.QuestionID)
	if err != nil {
		log.WithError(err).Error("Failed to look up question for answer")
		return apperror.Internal(err)
	}
	if q == nil {
		log.Warn("Question not found for answer")
		return ErrQuestionNotFound
	}

	if q.QuestionType.RequiresOption() && dto.OptionID == nil {
		log.WithField("question_type", q.QuestionType).Warn("Answer without option for choice question")
		return ErrOptionRequired
	}
	if !q.QuestionType.RequiresOption() && dto.TextAnswer == nil {
		log.WithField("question_type", q.QuestionType).Warn("Answer without text for text question")
		return ErrTextRequired
	}

	return nil
}

func (s *answerService) CreateAnswer(ctx context.Context, dto CreateAnswerDTO) (*Answer, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":     *dto.UserID,
		"quiz_id":     *dto.QuizID,
		"question_id": *dto.QuestionID,
	})

	a := &Answer{
		UserID:     *dto.UserID,
		QuizID:     *dto.QuizID,
		QuestionID: *dto.QuestionID,
		OptionID:   dto.OptionID,
		TextAnswer: dto.TextAnswer,
	}

	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		if err := s.validateAnswer(ctx, log, dto); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, a); err != nil {
			log.WithError(err).Error("Failed to create answer")
			return apperror.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithField("answer_id", a.ID).Info("Answer recorded successfully")
	return a, nil
}

func (s *answerService) GetAnswer(ctx context.Context, id int64) (*Answer, error) {
	log := config.WithContext(ctx)

	var a *Answer
	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		var err error
		a, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to get answer")
		return nil, apperror.Internal(err)
	}
	if a == nil {
		log.WithField("answer_id", id).Warn("Answer not found")
		return nil, ErrAnswerNotFound
	}
	return a, nil
}
