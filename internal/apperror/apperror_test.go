package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/quiz-survey-api/internal/apperror"
)

func TestStatus(t *testing.T) {
	cause := errors.New("Lost connection to MySQL server during query")

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"NotFound", apperror.NotFound("User"), http.StatusNotFound, "User not found"},
		{"Conflict", apperror.Conflict("Email already registered"), http.StatusBadRequest, "Email already registered"},
		{"BadRequest", apperror.BadRequest("Text answer is required for text questions"), http.StatusBadRequest, "Text answer is required for text questions"},
		{"Internal", apperror.Internal(cause), http.StatusInternalServerError, cause.Error()},
		{"Wrapped", fmt.Errorf("create: %w", apperror.NotFound("Quiz")), http.StatusNotFound, "create: Quiz not found"},
		{"Plain", cause, http.StatusInternalServerError, cause.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, apperror.Status(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestSentinelIdentity(t *testing.T) {
	errQuiz := apperror.NotFound("Quiz")
	wrapped := fmt.Errorf("lookup: %w", errQuiz)

	assert.ErrorIs(t, wrapped, errQuiz)
	assert.NotErrorIs(t, wrapped, apperror.NotFound("Quiz"))
}

func TestDetail(t *testing.T) {
	wrapped := fmt.Errorf("create answer: %w", apperror.BadRequest("Option ID is required for non-text questions"))
	assert.Equal(t, "Option ID is required for non-text questions", apperror.Detail(wrapped))
	assert.Equal(t, "plain", apperror.Detail(errors.New("plain")))
}
