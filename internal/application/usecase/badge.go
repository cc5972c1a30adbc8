package usecase

import (
	"context"
	"time"

	"progress-api/internal/domain"
)

type BadgeStore interface {
	Insert(ctx context.Context, b *domain.Badge) error
	FindAll(ctx context.Context) ([]domain.Badge, error)
	FindByUserEmail(ctx context.Context, email string) ([]domain.Badge, error)
}

// UserBadgeView — строка выдачи "бейджи пользователя" (джойн с users)
type UserBadgeView struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      uint   `json:"userId"`
	UserName    string `json:"userName"`
}

type BadgeUseCase struct {
	badges BadgeStore
}

func NewBadgeUseCase(bs BadgeStore) *BadgeUseCase {
	return &BadgeUseCase{badges: bs}
}

// NewBadge только собирает запись, время выпуска ставит сервер.
// Дедупликации нет: одно завершение — один бейдж.
func (uc *BadgeUseCase) NewBadge(userID uint, code, title, description, imageURL string) *domain.Badge {
	return &domain.Badge{
		UserID:      userID,
		Code:        code,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}
}

func (uc *BadgeUseCase) Issue(ctx context.Context, userID uint, code, title, description, imageURL string) (*domain.Badge, error) {
	b := uc.NewBadge(userID, code, title, description, imageURL)
	if err := uc.badges.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *BadgeUseCase) List(ctx context.Context) ([]domain.Badge, error) {
	return uc.badges.FindAll(ctx)
}

func (uc *BadgeUseCase) ListByUserEmail(ctx context.Context, email string) ([]UserBadgeView, error) {
	badges, err := uc.badges.FindByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(badges) == 0 {
		return nil, domain.ErrBadgeNotFound
	}
	views := make([]UserBadgeView, 0, len(badges))
	for _, b := range badges {
		views = append(views, UserBadgeView{
			Code:        b.Code,
			Title:       b.Title,
			Description: b.Description,
			UserID:      b.UserID,
			UserName:    b.User.Name,
		})
	}
	return views, nil
}
