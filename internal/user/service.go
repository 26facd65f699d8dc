package user

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/saulo-duarte/quiz-survey-api/internal/apperror"
	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

var (
	ErrUserNotFound    = apperror.NotFound("User")
	ErrEmailTaken      = apperror.Conflict("Email already registered")
	ErrPasswordTooLong = apperror.BadRequest("Password must be at most 72 bytes")
)

type UserService interface {
	CreateUser(ctx context.Context, dto CreateUserDTO) (*User, error)
	ListUsers(ctx context.Context, page util.Page) ([]*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
}

type userService struct {
	scope storage.Scope
	repo  UserRepository
}

func NewService(scope storage.Scope, repo UserRepository) UserService {
	return &userService{scope: scope, repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, dto CreateUserDTO) (*User, error) {
	log := config.WithContext(ctx)

	if len(*dto.Password) > MaxPasswordBytes {
		log.Warn("Password exceeds bcrypt input limit")
		return nil, ErrPasswordTooLong
	}

	u := &User{
		Email:     dto.Email,
		LastName:  dto.LastName,
		FirstName: dto.FirstName,
		RoleID:    *dto.RoleID,
	}

	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		taken, err := s.repo.ExistsByEmail(ctx, dto.Email)
		if err != nil {
			log.WithError(err).Error("Failed to check email uniqueness")
			return apperror.Internal(err)
		}
		if taken {
			log.WithField("email", dto.Email).Warn("Email already registered")
			return ErrEmailTaken
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Error("Failed to hash password")
			return apperror.Internal(err)
		}
		u.PasswordHash = string(hash)

		if err := s.repo.Create(ctx, u); err != nil {
			if storage.IsDuplicate(err) {
				log.WithField("email", dto.Email).Warn("Email registered concurrently")
				return ErrEmailTaken
			}
			log.WithError(err).Error("Failed to create user")
			return apperror.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"user_id": u.ID,
		"role_id": u.RoleID,
	}).Info("User created successfully")
	return u, nil
}

func (s *userService) ListUsers(ctx context.Context, page util.Page) ([]*User, error) {
	log := config.WithContext(ctx)

	var users []*User
	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.repo.List(ctx, page.Skip, page.Limit)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to list users")
		return nil, apperror.Internal(err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*User, error) {
	log := config.WithContext(ctx)

	var u *User
	err := s.scope.Scoped(ctx, func(ctx context.Context) error {
		var err error
		u, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to get user")
		return nil, apperror.Internal(err)
	}
	if u == nil {
		log.WithField("user_id", id).Warn("User not found")
		return nil, ErrUserNotFound
	}
	return u, nil
}
