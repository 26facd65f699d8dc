package answer

type Answer struct {
	ID         int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64   `gorm:"not null;index" json:"user_id"`
	QuizID     int64   `gorm:"not null;index" json:"quiz_id"`
	QuestionID int64   `gorm:"not null;index" json:"question_id"`
	OptionID   *int64  `gorm:"index" json:"option_id"`
	TextAnswer *string `gorm:"type:text" json:"text_answer"`
}

func (Answer) TableName() string { return "Answer" }
