package question

type Question struct {
	ID           int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID       int64        `gorm:"not null;index" json:"quiz_id"`
	Text         string       `gorm:"type:text;not null" json:"text"`
	QuestionType QuestionType `gorm:"size:20;not null" json:"question_type"`
}

func (Question) TableName() string { return "Question" }

// Option is a selectable choice of a question. Options are seeded outside the
// API and only referenced by answers.
type Option struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID int64  `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"size:500;not null" json:"text"`
}

func (Option) TableName() string { return "Option" }
