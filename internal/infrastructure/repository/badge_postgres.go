package repository

import (
	"context"

	"progress-api/internal/domain"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

func (r *BadgeRepository) Insert(ctx context.Context, b *domain.Badge) error {
	return r.db.WithContext(ctx).Omit("User").Create(b).Error
}

func (r *BadgeRepository) FindAll(ctx context.Context) ([]domain.Badge, error) {
	var badges []domain.Badge
	err := r.db.WithContext(ctx).Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) FindByUserEmail(ctx context.Context, email string) ([]domain.Badge, error) {
	var badges []domain.Badge
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = badges.user_id").
		Where("users.email = ?", email).
		Preload("User").
		Find(&badges).Error
	return badges, err
}
