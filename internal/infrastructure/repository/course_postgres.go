package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"progress-api/internal/domain"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCourseRepository(db *gorm.DB, rdb *redis.Client) *CourseRepository {
	return &CourseRepository{db: db, rdb: rdb}
}

// Каталог меняется редко, список держим в кеше 10 минут
func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	key := "courses:list"

	// 1. Читаем из кеша
	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var courses []domain.Course
		if json.Unmarshal([]byte(val), &courses) == nil {
			return courses, nil
		}
	}

	// 2. Читаем из БД (если нет в кеше)
	var courses []domain.Course
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}

	// 3. Пишем в кеш
	if data, err := json.Marshal(courses); err == nil {
		r.rdb.Set(ctx, key, data, 10*time.Minute)
	}

	return courses, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uint) (*domain.Course, error) {
	key := fmt.Sprintf("course:detail:%d", id)

	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var c domain.Course
		if json.Unmarshal([]byte(val), &c) == nil {
			return &c, nil
		}
	}

	var course domain.Course
	err = r.db.WithContext(ctx).First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}

	// Детали курса живут в кеше час
	if data, err := json.Marshal(course); err == nil {
		r.rdb.Set(ctx, key, data, 1*time.Hour)
	}

	return &course, nil
}
