package repository

import (
	"context"
	"errors"
	"time"

	"progress-api/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.Progress, error) {
	var p domain.Progress
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Course").
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) FindByUserEmailAndCourse(ctx context.Context, email string, courseID uint) (*domain.Progress, error) {
	var p domain.Progress
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = user_progress.user_id").
		Where("users.email = ? AND user_progress.course_id = ?", email, courseID).
		Preload("User").Preload("Course").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) FindAllByUserEmail(ctx context.Context, email string) ([]domain.Progress, error) {
	var list []domain.Progress
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = user_progress.user_id").
		Where("users.email = ?", email).
		Preload("User").Preload("Course").
		Find(&list).Error
	return list, err
}

func (r *ProgressRepository) FindByID(ctx context.Context, id uint) (*domain.Progress, error) {
	var p domain.Progress
	err := r.db.WithContext(ctx).Preload("User").Preload("Course").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) Insert(ctx context.Context, p *domain.Progress) error {
	// Omit, чтобы gorm не пытался апсертить users/courses через ассоциации
	return r.db.WithContext(ctx).Omit("User", "Course").Create(p).Error
}

func (r *ProgressRepository) Update(ctx context.Context, p *domain.Progress) error {
	return r.db.WithContext(ctx).Omit("User", "Course").Save(p).Error
}

// Complete атомарно переводит started -> completed и вставляет бейдж.
// Строка блокируется FOR UPDATE: из двух конкурентных завершений
// второе увидит completed и получит ErrCourseAlreadyCompleted.
func (r *ProgressRepository) Complete(ctx context.Context, userID, courseID uint, issue domain.BadgeFunc) (*domain.Progress, *domain.Badge, error) {
	var p domain.Progress
	var b *domain.Badge

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProgressNotFound
			}
			return err
		}

		if p.Status == domain.StatusCompleted {
			return domain.ErrCourseAlreadyCompleted
		}

		// Preload не совместим с FOR UPDATE, подгружаем связи отдельно
		if err := tx.First(&p.User, p.UserID).Error; err != nil {
			return err
		}
		if err := tx.First(&p.Course, p.CourseID).Error; err != nil {
			return err
		}

		now := time.Now()
		p.Status = domain.StatusCompleted
		p.CompletedAt = &now
		p.UpdatedAt = now
		if err := tx.Omit("User", "Course").Save(&p).Error; err != nil {
			return err
		}

		b = issue(&p)
		return tx.Omit("User").Create(b).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &p, b, nil
}

func (r *ProgressRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Progress{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProgressNotFound
	}
	return nil
}
