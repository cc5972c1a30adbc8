package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"progress-api/internal/domain"
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
}

type CourseStore interface {
	GetByID(ctx context.Context, id uint) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
}

type ProgressStore interface {
	FindByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.Progress, error)
	FindByUserEmailAndCourse(ctx context.Context, email string, courseID uint) (*domain.Progress, error)
	FindAllByUserEmail(ctx context.Context, email string) ([]domain.Progress, error)
	FindByID(ctx context.Context, id uint) (*domain.Progress, error)
	Insert(ctx context.Context, p *domain.Progress) error
	Update(ctx context.Context, p *domain.Progress) error
	Complete(ctx context.Context, userID, courseID uint, issue domain.BadgeFunc) (*domain.Progress, *domain.Badge, error)
	Delete(ctx context.Context, id uint) error
}

// ProgressSummary — денормализованная проекция для фронта
type ProgressSummary struct {
	UserName    string     `json:"userName"`
	CourseID    uint       `json:"courseId"`
	CourseName  string     `json:"courseName"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Status      string     `json:"status"`
}

type ProgressBrief struct {
	CourseID uint   `json:"courseId"`
	Status   string `json:"status"`
}

type CourseCompletion struct {
	CourseID    uint   `json:"courseId"`
	UserName    string `json:"userName"`
	CourseTitle string `json:"courseTitle"`
	Status      string `json:"status"`
}

type CompletionResult struct {
	Message string           `json:"message"`
	Badge   uint             `json:"badge"`
	Course  CourseCompletion `json:"course"`
}

type ProgressUseCase struct {
	users    UserStore
	courses  CourseStore
	progress ProgressStore
	badges   *BadgeUseCase
}

func NewProgressUseCase(us UserStore, cs CourseStore, ps ProgressStore, bu *BadgeUseCase) *ProgressUseCase {
	return &ProgressUseCase{
		users:    us,
		courses:  cs,
		progress: ps,
		badges:   bu,
	}
}

// Enroll создает запись прогресса в статусе started.
// Повторная запись на тот же курс отклоняется (ErrAlreadyEnrolled).
func (uc *ProgressUseCase) Enroll(ctx context.Context, userEmail string, courseID uint) (*domain.Progress, error) {
	user, err := uc.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", userEmail, domain.ErrUserNotFound)
		}
		return nil, err
	}

	course, err := uc.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return nil, fmt.Errorf("course with id %d: %w", courseID, domain.ErrCourseNotFound)
		}
		return nil, err
	}

	_, err = uc.progress.FindByUserAndCourse(ctx, user.ID, course.ID)
	if err == nil {
		return nil, domain.ErrAlreadyEnrolled
	}
	if !errors.Is(err, domain.ErrProgressNotFound) {
		return nil, err
	}

	now := time.Now()
	p := &domain.Progress{
		UserID:    user.ID,
		CourseID:  course.ID,
		Status:    domain.StatusStarted,
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := uc.progress.Insert(ctx, p); err != nil {
		return nil, err
	}

	log.Printf("Created user progress for user %d and course %d", user.ID, course.ID)

	p.User = *user
	p.Course = *course
	return p, nil
}

func (uc *ProgressUseCase) GetProgress(ctx context.Context, userEmail string, courseID uint) (*ProgressSummary, error) {
	p, err := uc.progress.FindByUserEmailAndCourse(ctx, userEmail, courseID)
	if err != nil {
		return nil, err
	}
	s := toSummary(p)
	return &s, nil
}

// ListProgressForUser возвращает пустой срез, а не ошибку, если записей нет —
// в отличие от GetProgress, который на отсутствие отвечает NotFound.
func (uc *ProgressUseCase) ListProgressForUser(ctx context.Context, userEmail string) ([]ProgressSummary, error) {
	list, err := uc.progress.FindAllByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	summaries := make([]ProgressSummary, 0, len(list))
	for i := range list {
		summaries = append(summaries, toSummary(&list[i]))
	}
	return summaries, nil
}

func (uc *ProgressUseCase) FindOne(ctx context.Context, id uint) (*ProgressBrief, error) {
	p, err := uc.progress.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProgressBrief{CourseID: p.CourseID, Status: p.Status}, nil
}

// CompleteCourse переводит запись в completed и выпускает бейдж.
// Смена статуса и вставка бейджа — одна транзакция в сторе.
func (uc *ProgressUseCase) CompleteCourse(ctx context.Context, courseID, userID uint) (*CompletionResult, error) {
	p, badge, err := uc.progress.Complete(ctx, userID, courseID, uc.completionBadge)
	if err != nil {
		return nil, err
	}

	log.Printf("User %d completed course %d, badge %d issued", userID, courseID, badge.ID)

	return &CompletionResult{
		Message: "Course completed successfully",
		Badge:   badge.ID,
		Course: CourseCompletion{
			CourseID:    p.CourseID,
			UserName:    p.User.Name,
			CourseTitle: p.Course.Title,
			Status:      p.Status,
		},
	}, nil
}

// Remove — административное удаление записи прогресса
func (uc *ProgressUseCase) Remove(ctx context.Context, id uint) error {
	return uc.progress.Delete(ctx, id)
}

func (uc *ProgressUseCase) completionBadge(p *domain.Progress) *domain.Badge {
	image := p.Course.BadgeImage
	if image == "" {
		image = domain.DefaultBadgeImage
	}
	return uc.badges.NewBadge(
		p.UserID,
		strconv.FormatUint(uint64(p.UserID), 10),
		"Completed "+p.Course.Title,
		fmt.Sprintf("user %s has completed the course", p.User.Name),
		image,
	)
}

func toSummary(p *domain.Progress) ProgressSummary {
	return ProgressSummary{
		UserName:    p.User.Name,
		CourseID:    p.CourseID,
		CourseName:  p.Course.Title,
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
		Status:      p.Status,
	}
}
