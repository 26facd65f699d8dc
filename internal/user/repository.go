package user

import (
	"context"

	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	List(ctx context.Context, skip, limit int) ([]*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	return r.store.DB(ctx).Create(u).Error
}

func (r *userRepository) List(ctx context.Context, skip, limit int) ([]*User, error) {
	users := []*User{}
	if err := storage.Page(r.store.DB(ctx), skip, limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := r.store.DB(ctx).First(&u, "id = ?", id).Error; err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return storage.Exists(r.store.DB(ctx), &User{}, "id = ?", id)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return storage.Exists(r.store.DB(ctx), &User{}, "email = ?", email)
}
