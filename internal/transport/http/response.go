package handlers

import (
	"errors"
	"net/http"

	"progress-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// abortWithError переводит доменные ошибки в HTTP статусы.
// Всё, что не распознали — 500, без ретраев на нашей стороне.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrProgressNotFound),
		errors.Is(err, domain.ErrBadgeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrCourseAlreadyCompleted):
		status = http.StatusConflict
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
