package question

import (
	"context"

	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
)

type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	GetByID(ctx context.Context, id int64) (*Question, error)
}

type questionRepository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) QuestionRepository {
	return &questionRepository{store: store}
}

func (r *questionRepository) Create(ctx context.Context, q *Question) error {
	return r.store.DB(ctx).Create(q).Error
}

func (r *questionRepository) GetByID(ctx context.Context, id int64) (*Question, error) {
	var q Question
	if err := r.store.DB(ctx).First(&q, "id = ?", id).Error; err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}
