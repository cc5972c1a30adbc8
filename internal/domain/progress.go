package domain

import (
	"errors"
	"time"
)

var (
	ErrProgressNotFound       = errors.New("progress not found")
	ErrAlreadyEnrolled        = errors.New("user already enrolled in course")
	ErrCourseAlreadyCompleted = errors.New("course already completed")
)

// Статусы прогресса. Переход только вперед: started -> completed
const (
	StatusStarted   = "started"
	StatusCompleted = "completed"
)

// Progress — запись о прохождении одного курса одним пользователем.
// На пару (user, course) существует максимум одна запись.
type Progress struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"column:user_id;index:idx_user_course" json:"userId"`
	CourseID    uint       `gorm:"column:course_id;index:idx_user_course" json:"courseId"`
	Status      string     `gorm:"default:'started'" json:"status"`
	StartedAt   time.Time  `gorm:"column:started_at" json:"startedAt"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`

	User   User   `gorm:"foreignKey:UserID" json:"user"`
	Course Course `gorm:"foreignKey:CourseID" json:"course"`
}

func (Progress) TableName() string {
	return "user_progress"
}

// BadgeFunc собирает бейдж для заблокированной записи прогресса.
// Вставка происходит в той же транзакции, что и смена статуса.
type BadgeFunc func(p *Progress) *Badge
