package user_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quiz-survey-api/internal/apperror"
	"github.com/saulo-duarte/quiz-survey-api/internal/testutil"
	"github.com/saulo-duarte/quiz-survey-api/internal/user"
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

func int64Ptr(n int64) *int64 { return &n }
func strPtr(s string) *string { return &s }

func newService() (*testutil.MemDB, user.UserService) {
	db := testutil.NewMemDB()
	return db, user.NewService(db, db.UserRepo())
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("AssignsIDAndHashesPassword", func(t *testing.T) {
		db, svc := newService()

		u, err := svc.CreateUser(ctx, user.CreateUserDTO{
			Email:     "a@x.com",
			FirstName: strPtr("Ann"),
			RoleID:    int64Ptr(1),
			Password:  strPtr("s3cret"),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), u.ID)
		assert.Equal(t, "a@x.com", u.Email)
		assert.Equal(t, "Ann", *u.FirstName)
		assert.Nil(t, u.LastName)
		assert.NotEqual(t, "s3cret", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
		assert.Equal(t, 1, db.Acquired)
		assert.Equal(t, 1, db.Released)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db, svc := newService()
		_, err := svc.CreateUser(ctx, user.CreateUserDTO{Email: "a@x.com", RoleID: int64Ptr(1), Password: strPtr("p")})
		require.NoError(t, err)
		db.ResetCalls()

		_, err = svc.CreateUser(ctx, user.CreateUserDTO{Email: "a@x.com", RoleID: int64Ptr(2), Password: strPtr("q")})

		require.ErrorIs(t, err, user.ErrEmailTaken)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
		assert.Equal(t, "Email already registered", err.Error())
		assert.Equal(t, []string{"users.ExistsByEmail"}, db.Calls())

		users, _, _, _ := db.Counts()
		assert.Equal(t, 1, users)
		assert.Equal(t, db.Acquired, db.Released)
	})

	t.Run("PasswordLimitCountsBytes", func(t *testing.T) {
		db, svc := newService()

		_, err := svc.CreateUser(ctx, user.CreateUserDTO{
			Email:    "a@x.com",
			RoleID:   int64Ptr(1),
			Password: strPtr(strings.Repeat("é", user.MaxPasswordBytes)),
		})

		require.ErrorIs(t, err, user.ErrPasswordTooLong)
		assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
		assert.Empty(t, db.Calls())
		assert.Zero(t, db.Acquired)

		_, err = svc.CreateUser(ctx, user.CreateUserDTO{
			Email:    "a@x.com",
			RoleID:   int64Ptr(1),
			Password: strPtr(strings.Repeat("a", user.MaxPasswordBytes)),
		})
		assert.NoError(t, err)
	})

	t.Run("ZeroRoleAndEmptyPassword", func(t *testing.T) {
		_, svc := newService()

		u, err := svc.CreateUser(ctx, user.CreateUserDTO{Email: "z@x.com", RoleID: int64Ptr(0), Password: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, int64(0), u.RoleID)
	})

	t.Run("StorageConstraintIsConflict", func(t *testing.T) {
		db, svc := newService()
		db.FailOn("users.Create", gorm.ErrDuplicatedKey)

		_, err := svc.CreateUser(ctx, user.CreateUserDTO{Email: "b@x.com", RoleID: int64Ptr(1), Password: strPtr("p")})
		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		db, svc := newService()
		db.FailOn("users.ExistsByEmail", errors.New("Table 'mydb.User' doesn't exist"))

		_, err := svc.CreateUser(ctx, user.CreateUserDTO{Email: "c@x.com", RoleID: int64Ptr(1), Password: strPtr("p")})

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, apperror.Status(err))
		assert.Equal(t, "Table 'mydb.User' doesn't exist", apperror.Detail(err))
		assert.Equal(t, 1, db.Released)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	_, svc := newService()

	_, err := svc.GetUser(ctx, 7)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Equal(t, "User not found", err.Error())

	created, err := svc.CreateUser(ctx, user.CreateUserDTO{Email: "a@x.com", RoleID: int64Ptr(1), Password: strPtr("p")})
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	_, svc := newService()

	users, err := svc.ListUsers(ctx, util.Page{Skip: 0, Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := svc.CreateUser(ctx, user.CreateUserDTO{Email: email, RoleID: int64Ptr(1), Password: strPtr("p")})
		require.NoError(t, err)
	}

	users, err = svc.ListUsers(ctx, util.Page{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "b@x.com", users[0].Email)

	users, err = svc.ListUsers(ctx, util.Page{Skip: 0, Limit: -1})
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
