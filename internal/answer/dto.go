package answer

// CreateAnswerDTO carries either OptionID (choice questions) or TextAnswer
// (text questions); which one is needed depends on the referenced question.
// The reference ids are pointers so that a present zero still reaches the
// existence checks.
type CreateAnswerDTO struct {
	UserID     *int64  `json:"user_id" validate:"required"`
	QuizID     *int64  `json:"quiz_id" validate:"required"`
	QuestionID *int64  `json:"question_id" validate:"required"`
	OptionID   *int64  `json:"option_id"`
	TextAnswer *string `json:"text_answer"`
}
