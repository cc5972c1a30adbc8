package handlers

import (
	"context"
	"net/http"

	"progress-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type CourseService interface {
	List(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id uint) (*domain.Course, error)
}

type CourseHandler struct {
	service CourseService
}

func NewCourseHandler(service CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) GetOne(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	course, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}
