package domain

import (
	"errors"
	"time"
)

var ErrBadgeNotFound = errors.New("badges not found")

// Иконка по умолчанию, если у курса не задан badge_image
const DefaultBadgeImage = "https://cdn-icons-png.flaticon.com/512/1534/1534225.png"

// Badge — награда за завершение курса. Никогда не обновляется.
// Code — легаси-поле старого фронта (строковый id пользователя),
// настоящая связь теперь через UserID.
type Badge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;index" json:"userId"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Badge) TableName() string {
	return "badges"
}
