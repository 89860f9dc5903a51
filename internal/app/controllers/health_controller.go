package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courses/internal/app/models/dto"
	"github.com/yigit/courses/internal/app/services"
	"github.com/yigit/courses/internal/pkg/logger"
)

// HealthController reports store reachability
type HealthController struct {
	courseService services.CourseService
	storage       string
}

func NewHealthController(courseService services.CourseService, storage string) *HealthController {
	return &HealthController{courseService: courseService, storage: storage}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthController) Health(ctx *gin.Context) {
	n, err := h.courseService.CountCourses(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Storage: h.storage})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: h.storage, Courses: n})
}
