package quiz

import (
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

type QuizCategory struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

func (QuizCategory) TableName() string { return "QuizCategory" }

type Quiz struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description *string         `gorm:"type:text" json:"description"`
	StartDate   *util.LocalDate `gorm:"type:date" json:"start_date"`
	EndDate     *util.LocalDate `gorm:"type:date" json:"end_date"`
	Status      *string         `gorm:"size:50" json:"status"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
}

func (Quiz) TableName() string { return "Quiz" }
