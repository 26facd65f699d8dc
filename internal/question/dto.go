package question

type CreateQuestionDTO struct {
	QuizID       *int64       `json:"quiz_id" validate:"required"`
	Text         *string      `json:"text" validate:"required"`
	QuestionType QuestionType `json:"question_type" validate:"required,oneof=single_choice multiple_choice text"`
}
