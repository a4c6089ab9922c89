package models

import (
	"time"
)

// Course is a unit of study that quizzes hang off of.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Course) TableName() string {
	return "courses"
}

// Quiz is a single question attached to a course. The answer is
// stored but never serialized back out.
type Quiz struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CourseID uint   `gorm:"not null;index" json:"courseId"`
	Question string `gorm:"not null" json:"question"`
	Answer   string `gorm:"not null" json:"-"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
