package question_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quiz-survey-api/internal/apperror"
	"github.com/saulo-duarte/quiz-survey-api/internal/question"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/testutil"
)

func int64Ptr(n int64) *int64 { return &n }
func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*testutil.MemDB, question.QuestionService) {
	t.Helper()
	db := testutil.NewMemDB()
	return db, question.NewService(db, db.QuestionRepo(), db.QuizRepo())
}

func seedQuiz(t *testing.T, db *testutil.MemDB) int64 {
	t.Helper()
	q := &quiz.Quiz{Title: "T", CategoryID: 1}
	require.NoError(t, db.QuizRepo().Create(context.Background(), q))
	db.ResetCalls()
	return q.ID
}

func TestQuestionTypeIsValid(t *testing.T) {
	for _, qt := range question.AllTypes {
		assert.True(t, qt.IsValid(), qt)
	}
	assert.False(t, question.QuestionType("essay").IsValid())

	assert.True(t, question.SINGLE_CHOICE.RequiresOption())
	assert.True(t, question.MULTIPLE_CHOICE.RequiresOption())
	assert.False(t, question.TEXT.RequiresOption())
}

func TestCreateQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("QuizExists", func(t *testing.T) {
		db, svc := setup(t)
		quizID := seedQuiz(t, db)

		q, err := svc.CreateQuestion(ctx, question.CreateQuestionDTO{
			QuizID:       int64Ptr(quizID),
			Text:         strPtr("Q1"),
			QuestionType: question.TEXT,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), q.ID)
		assert.Equal(t, question.TEXT, q.QuestionType)
		assert.Equal(t, []string{"quizzes.Exists", "questions.Create"}, db.Calls())
	})

	t.Run("QuizMissing", func(t *testing.T) {
		db, svc := setup(t)

		_, err := svc.CreateQuestion(ctx, question.CreateQuestionDTO{
			QuizID:       int64Ptr(42),
			Text:         strPtr("Q1"),
			QuestionType: question.SINGLE_CHOICE,
		})

		require.ErrorIs(t, err, quiz.ErrQuizNotFound)
		assert.Equal(t, "Quiz not found", err.Error())
		_, _, questions, _ := db.Counts()
		assert.Zero(t, questions)
		assert.Equal(t, 1, db.Acquired)
		assert.Equal(t, 1, db.Released)
	})

	t.Run("ZeroQuizIDIsLookedUp", func(t *testing.T) {
		db, svc := setup(t)
		seedQuiz(t, db)

		_, err := svc.CreateQuestion(ctx, question.CreateQuestionDTO{QuizID: int64Ptr(0), Text: strPtr(""), QuestionType: question.TEXT})

		require.ErrorIs(t, err, question.ErrQuizNotFound)
		assert.Equal(t, []string{"quizzes.Exists"}, db.Calls())
	})

	t.Run("ForeignKeyOnInsert", func(t *testing.T) {
		db, svc := setup(t)
		quizID := seedQuiz(t, db)
		db.FailOn("questions.Create", gorm.ErrForeignKeyViolated)

		_, err := svc.CreateQuestion(ctx, question.CreateQuestionDTO{QuizID: int64Ptr(quizID), Text: strPtr("Q"), QuestionType: question.TEXT})
		assert.ErrorIs(t, err, question.ErrQuizNotFound)
	})

	t.Run("LookupFailure", func(t *testing.T) {
		db, svc := setup(t)
		db.FailOn("quizzes.Exists", errors.New("connection reset"))

		_, err := svc.CreateQuestion(ctx, question.CreateQuestionDTO{QuizID: int64Ptr(1), Text: strPtr("Q"), QuestionType: question.TEXT})
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
		assert.Equal(t, "connection reset", apperror.Detail(err))
		assert.Equal(t, []string{"quizzes.Exists"}, db.Calls())
	})
}

func TestGetQuestion(t *testing.T) {
	ctx := context.Background()
	db, svc := setup(t)

	_, err := svc.GetQuestion(ctx, 3)
	assert.ErrorIs(t, err, question.ErrQuestionNotFound)

	quizID := seedQuiz(t, db)
	created, err := svc.CreateQuestion(ctx, question.CreateQuestionDTO{QuizID: int64Ptr(quizID), Text: strPtr("Q"), QuestionType: question.MULTIPLE_CHOICE})
	require.NoError(t, err)

	got, err := svc.GetQuestion(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, question.MULTIPLE_CHOICE, got.QuestionType)
}
