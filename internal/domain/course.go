package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")

// Course принадлежит каталогу курсов, здесь не мутируется
type Course struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"index" json:"title"`
	Description   string    `json:"description"`
	Module        string    `json:"module"`
	DurationHours int       `gorm:"column:duration_hours" json:"durationHours"`
	BadgeImage    string    `gorm:"column:badge_image" json:"badgeImage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Course) TableName() string {
	return "courses"
}
