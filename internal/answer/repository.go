package answer

import (
	"context"

	"github.com/saulo-duarte/quiz-survey-api/internal/storage"
)

type AnswerRepository interface {
	Create(ctx context.Context, a *Answer) error
	GetByID(ctx context.Context, id int64) (*Answer, error)
}

type answerRepository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) AnswerRepository {
	return &answerRepository{store: store}
}

func (r *answerRepository) Create(ctx context.Context, a *Answer) error {
	return r.store.DB(ctx).Create(a).Error
}

func (r *answerRepository) GetByID(ctx context.Context, id int64) (*Answer, error) {
	var a Answer
	if err := r.store.DB(ctx).First(&a, "id = ?", id).Error; err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
