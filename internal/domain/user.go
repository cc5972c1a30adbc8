package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// Роли приходят в клейме токена от auth-сервиса
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User принадлежит auth-сервису, мы его только читаем
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:100" json:"email"`
	Password  string    `json:"-"`
	Name      string    `gorm:"size:100" json:"name"`
	Role      string    `gorm:"default:'user'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
