package quiz_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quiz-survey-api/internal/apperror"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/testutil"
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

func int64Ptr(n int64) *int64 { return &n }
func strPtr(s string) *string { return &s }

func TestCreateQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("CategoryIsNotChecked", func(t *testing.T) {
		db := testutil.NewMemDB()
		svc := quiz.NewService(db, db.QuizRepo())

		start := util.NewLocalDate(2024, time.September, 1)
		q, err := svc.CreateQuiz(ctx, quiz.CreateQuizDTO{
			Title:      strPtr("T"),
			StartDate:  &start,
			CategoryID: int64Ptr(999),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), q.ID)
		assert.Equal(t, int64(999), q.CategoryID)
		assert.Equal(t, "2024-09-01", q.StartDate.String())
		assert.Nil(t, q.EndDate)
		assert.Equal(t, []string{"quizzes.Create"}, db.Calls())
	})

	t.Run("EmptyTitleAndZeroCategory", func(t *testing.T) {
		db := testutil.NewMemDB()
		svc := quiz.NewService(db, db.QuizRepo())

		q, err := svc.CreateQuiz(ctx, quiz.CreateQuizDTO{Title: strPtr(""), CategoryID: int64Ptr(0)})
		require.NoError(t, err)
		assert.Equal(t, "", q.Title)
		assert.Equal(t, int64(0), q.CategoryID)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		db := testutil.NewMemDB()
		db.FailOn("quizzes.Create", errors.New("Cannot add or update a child row"))
		svc := quiz.NewService(db, db.QuizRepo())

		_, err := svc.CreateQuiz(ctx, quiz.CreateQuizDTO{Title: strPtr("T"), CategoryID: int64Ptr(1)})

		assert.Equal(t, http.StatusInternalServerError, apperror.Status(err))
		assert.Equal(t, "Cannot add or update a child row", apperror.Detail(err))
		assert.Equal(t, 1, db.Released)
	})
}

func TestGetQuiz(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewMemDB()
	svc := quiz.NewService(db, db.QuizRepo())

	_, err := svc.GetQuiz(ctx, 1)
	assert.ErrorIs(t, err, quiz.ErrQuizNotFound)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))

	_, err = svc.CreateQuiz(ctx, quiz.CreateQuizDTO{Title: strPtr("T"), CategoryID: int64Ptr(1)})
	require.NoError(t, err)

	got, err := svc.GetQuiz(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
}

func TestListQuizzes(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewMemDB()
	svc := quiz.NewService(db, db.QuizRepo())

	quizzes, err := svc.ListQuizzes(ctx, util.Page{Skip: 0, Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, quizzes)
	assert.Empty(t, quizzes)

	for _, title := range []string{"A", "B", "C"} {
		_, err := svc.CreateQuiz(ctx, quiz.CreateQuizDTO{Title: strPtr(title), CategoryID: int64Ptr(1)})
		require.NoError(t, err)
	}

	quizzes, err = svc.ListQuizzes(ctx, util.Page{Skip: 1, Limit: 100})
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, "B", quizzes[0].Title)
	assert.Equal(t, "C", quizzes[1].Title)

	db.FailOn("quizzes.List", errors.New("gone away"))
	_, err = svc.ListQuizzes(ctx, util.Page{Limit: 10})
	assert.Equal(t, http.StatusInternalServerError, apperror.Status(err))
}
