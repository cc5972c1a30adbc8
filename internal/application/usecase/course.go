package usecase

import (
	"context"

	"progress-api/internal/domain"
)

// Каталог курсов здесь только читается (витрина для фронта),
// мутации живут в отдельной админке.
type CourseUseCase struct {
	courses CourseStore
}

func NewCourseUseCase(cs CourseStore) *CourseUseCase {
	return &CourseUseCase{courses: cs}
}

func (uc *CourseUseCase) List(ctx context.Context) ([]domain.Course, error) {
	return uc.courses.List(ctx)
}

func (uc *CourseUseCase) GetByID(ctx context.Context, id uint) (*domain.Course, error) {
	return uc.courses.GetByID(ctx, id)
}
