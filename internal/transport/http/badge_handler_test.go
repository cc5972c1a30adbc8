package handlers

import (
	"context"
	"net/http"
	"testing"

	"progress-api/internal/application/usecase"
	"progress-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBadgeEndpoints(t *testing.T) {
	userToken := makeToken(t, "1", domain.RoleUser)
	adminToken := makeToken(t, "2", domain.RoleAdmin)

	t.Run("list for user is 404 when none", func(t *testing.T) {
		bs := &stubBadgeService{
			listByUser: func(_ context.Context, _ string) ([]usecase.UserBadgeView, error) {
				return nil, domain.ErrBadgeNotFound
			},
		}
		router := newTestRouter(nil, bs, nil)
		w := doRequest(router, http.MethodGet, "/badges/user/alice@x.com", userToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list for user returns joined view", func(t *testing.T) {
		bs := &stubBadgeService{
			listByUser: func(_ context.Context, email string) ([]usecase.UserBadgeView, error) {
				return []usecase.UserBadgeView{{Code: "1", Title: "Completed Go Basics", UserID: 1, UserName: "Alice"}}, nil
			},
		}
		router := newTestRouter(nil, bs, nil)
		w := doRequest(router, http.MethodGet, "/badges/user/alice@x.com", userToken, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userName":"Alice"`)
	})

	t.Run("issue requires admin", func(t *testing.T) {
		router := newTestRouter(nil, &stubBadgeService{}, nil)
		w := doRequest(router, http.MethodPost, "/badges", userToken, `{"userId":1,"title":"Completed Go Basics"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("issue defaults code and image", func(t *testing.T) {
		var gotCode, gotImage string
		bs := &stubBadgeService{
			issue: func(_ context.Context, userID uint, code, title, description, imageURL string) (*domain.Badge, error) {
				gotCode, gotImage = code, imageURL
				return &domain.Badge{ID: 1, UserID: userID, Code: code, Title: title, ImageURL: imageURL}, nil
			},
		}
		router := newTestRouter(nil, bs, nil)
		w := doRequest(router, http.MethodPost, "/badges", adminToken, `{"userId":1,"title":"Completed Go Basics"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "1", gotCode)
		assert.Equal(t, domain.DefaultBadgeImage, gotImage)
	})

	t.Run("issue without title is 400", func(t *testing.T) {
		router := newTestRouter(nil, &stubBadgeService{}, nil)
		w := doRequest(router, http.MethodPost, "/badges", adminToken, `{"userId":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCourseEndpoints(t *testing.T) {
	t.Run("catalog is public", func(t *testing.T) {
		cs := &stubCourseService{
			list: func(_ context.Context) ([]domain.Course, error) {
				return []domain.Course{{ID: 10, Title: "Go Basics"}}, nil
			},
		}
		router := newTestRouter(nil, nil, cs)
		w := doRequest(router, http.MethodGet, "/courses", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Go Basics")
	})

	t.Run("unknown course is 404", func(t *testing.T) {
		cs := &stubCourseService{
			list: func(_ context.Context) ([]domain.Course, error) { return nil, nil },
			get: func(_ context.Context, _ uint) (*domain.Course, error) {
				return nil, domain.ErrCourseNotFound
			},
		}
		router := newTestRouter(nil, nil, cs)
		w := doRequest(router, http.MethodGet, "/courses/999", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
