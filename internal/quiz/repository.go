package quiz

import (
	"context"

	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
)

type QuizRepository interface {
	Create(ctx context.Context, q *Quiz) error
	List(ctx context.Context, skip, limit int) ([]*Quiz, error)
	GetByID(ctx context.Context, id int64) (*Quiz, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type quizRepository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) QuizRepository {
	return &quizRepository{store: store}
}

func (r *quizRepository) Create(ctx context.Context, q *Quiz) error {
	return r.store.DB(ctx).Create(q).Error
}

func (r *quizRepository) List(ctx context.Context, skip, limit int) ([]*Quiz, error) {
	quizzes := []*Quiz{}
	if err := storage.Page(r.store.DB(ctx), skip, limit).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) GetByID(ctx context.Context, id int64) (*Quiz, error) {
	var quiz Quiz
	if err := r.store.DB(ctx).First(&quiz, "id = ?", id).Error; err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return storage.Exists(r.store.DB(ctx), &Quiz{}, "id = ?", id)
}
