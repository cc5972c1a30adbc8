package usecase

import (
	"context"
	"sync"
	"testing"

	"progress-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBadgeStore struct {
	mu     sync.Mutex
	seq    uint
	badges []*domain.Badge
	users  map[uint]*domain.User
}

func (s *fakeBadgeStore) Insert(_ context.Context, b *domain.Badge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	b.ID = s.seq
	cp := *b
	s.badges = append(s.badges, &cp)
	return nil
}

func (s *fakeBadgeStore) FindAll(_ context.Context) ([]domain.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]domain.Badge, 0, len(s.badges))
	for _, b := range s.badges {
		list = append(list, *b)
	}
	return list, nil
}

func (s *fakeBadgeStore) FindByUserEmail(_ context.Context, email string) ([]domain.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []domain.Badge
	for _, b := range s.badges {
		u, ok := s.users[b.UserID]
		if !ok || u.Email != email {
			continue
		}
		cp := *b
		cp.User = *u
		list = append(list, cp)
	}
	return list, nil
}

func TestIssueBadge(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns server-side creation time", func(t *testing.T) {
		uc := NewBadgeUseCase(&fakeBadgeStore{})
		b, err := uc.Issue(ctx, 1, "1", "Completed Go Basics", "user Alice has completed the course", domain.DefaultBadgeImage)
		require.NoError(t, err)
		assert.NotZero(t, b.ID)
		assert.False(t, b.CreatedAt.IsZero())
	})

	t.Run("no dedup: identical issues produce distinct records", func(t *testing.T) {
		store := &fakeBadgeStore{}
		uc := NewBadgeUseCase(store)

		b1, err := uc.Issue(ctx, 1, "1", "Completed Go Basics", "desc", domain.DefaultBadgeImage)
		require.NoError(t, err)
		b2, err := uc.Issue(ctx, 1, "1", "Completed Go Basics", "desc", domain.DefaultBadgeImage)
		require.NoError(t, err)

		assert.NotEqual(t, b1.ID, b2.ID)
		assert.Len(t, store.badges, 2)
	})
}

func TestListBadgesByUserEmail(t *testing.T) {
	ctx := context.Background()
	users := map[uint]*domain.User{
		1: {ID: 1, Email: "alice@x.com", Name: "Alice"},
	}

	t.Run("no badges is not found", func(t *testing.T) {
		uc := NewBadgeUseCase(&fakeBadgeStore{users: users})
		_, err := uc.ListByUserEmail(ctx, "alice@x.com")
		assert.ErrorIs(t, err, domain.ErrBadgeNotFound)
	})

	t.Run("joined view carries user name", func(t *testing.T) {
		store := &fakeBadgeStore{users: users}
		uc := NewBadgeUseCase(store)
		_, err := uc.Issue(ctx, 1, "1", "Completed Go Basics", "desc", domain.DefaultBadgeImage)
		require.NoError(t, err)

		views, err := uc.ListByUserEmail(ctx, "alice@x.com")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "1", views[0].Code)
		assert.Equal(t, uint(1), views[0].UserID)
		assert.Equal(t, "Alice", views[0].UserName)
	})
}
