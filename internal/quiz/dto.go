package quiz

import util "github.com/saulo-duarte/quiz-survey-api/internal/utils"

type CreateQuizDTO struct {
	Title       *string         `json:"title" validate:"required"`
	Description *string         `json:"description"`
	StartDate   *util.LocalDate `json:"start_date"`
	EndDate     *util.LocalDate `json:"end_date"`
	Status      *string         `json:"status"`
	CategoryID  *int64          `json:"category_id" validate:"required"`
}
