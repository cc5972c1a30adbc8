package handlers

import (
	"context"
	"net/http"
	"strconv"

	"progress-api/internal/application/usecase"
	"progress-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type BadgeService interface {
	Issue(ctx context.Context, userID uint, code, title, description, imageURL string) (*domain.Badge, error)
	List(ctx context.Context) ([]domain.Badge, error)
	ListByUserEmail(ctx context.Context, email string) ([]usecase.UserBadgeView, error)
}

type BadgeHandler struct {
	service BadgeService
}

func NewBadgeHandler(service BadgeService) *BadgeHandler {
	return &BadgeHandler{service: service}
}

type issueBadgeReq struct {
	UserID      uint   `json:"userId" binding:"required"`
	Code        string `json:"code"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (h *BadgeHandler) Issue(c *gin.Context) {
	var req issueBadgeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Легаси-код по конвенции равен id пользователя
	if req.Code == "" {
		req.Code = strconv.FormatUint(uint64(req.UserID), 10)
	}
	if req.ImageURL == "" {
		req.ImageURL = domain.DefaultBadgeImage
	}

	b, err := h.service.Issue(c.Request.Context(), req.UserID, req.Code, req.Title, req.Description, req.ImageURL)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BadgeHandler) List(c *gin.Context) {
	badges, err := h.service.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, badges)
}

func (h *BadgeHandler) ListForUser(c *gin.Context) {
	views, err := h.service.ListByUserEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
