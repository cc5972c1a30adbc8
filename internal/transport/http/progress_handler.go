package handlers

import (
	"context"
	"net/http"
	"strconv"

	"progress-api/internal/application/usecase"
	"progress-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProgressService interface {
	Enroll(ctx context.Context, userEmail string, courseID uint) (*domain.Progress, error)
	GetProgress(ctx context.Context, userEmail string, courseID uint) (*usecase.ProgressSummary, error)
	ListProgressForUser(ctx context.Context, userEmail string) ([]usecase.ProgressSummary, error)
	FindOne(ctx context.Context, id uint) (*usecase.ProgressBrief, error)
	CompleteCourse(ctx context.Context, courseID, userID uint) (*usecase.CompletionResult, error)
	Remove(ctx context.Context, id uint) error
}

type ProgressHandler struct {
	service ProgressService
}

func NewProgressHandler(service ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

type enrollReq struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	CourseID  uint   `json:"courseId" binding:"required"`
}

func (h *ProgressHandler) Enroll(c *gin.Context) {
	var req enrollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Enroll(c.Request.Context(), req.UserEmail, req.CourseID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProgressHandler) GetForUser(c *gin.Context) {
	list, err := h.service.ListProgressForUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ProgressHandler) GetForUserAndCourse(c *gin.Context) {
	courseID, err := parseUintParam(c, "courseId")
	if err != nil {
		return
	}

	summary, err := h.service.GetProgress(c.Request.Context(), c.Param("email"), courseID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ProgressHandler) GetOne(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	brief, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, brief)
}

func (h *ProgressHandler) CompleteCourse(c *gin.Context) {
	courseID, err := parseUintParam(c, "courseId")
	if err != nil {
		return
	}
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return
	}

	result, err := h.service.CompleteCourse(c.Request.Context(), courseID, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ProgressHandler) Remove(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, err
	}
	return uint(v), nil
}
