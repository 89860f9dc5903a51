package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courses/internal/app/models"
	"github.com/yigit/courses/internal/app/models/dto"
	"github.com/yigit/courses/internal/app/services"
	"github.com/yigit/courses/internal/middleware"
	"github.com/yigit/courses/internal/pkg/apperrors"
	"github.com/yigit/courses/internal/pkg/metrics"
)

// CourseController handles the course resource endpoints
type CourseController struct {
	courseService services.CourseService
	metrics       *metrics.Metrics
}

// NewCourseController creates a new CourseController. m may be nil.
func NewCourseController(courseService services.CourseService, m *metrics.Metrics) *CourseController {
	return &CourseController{
		courseService: courseService,
		metrics:       m,
	}
}

func parseCourseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid course ID").
			WithField("id").
			WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// parseCourseFilter builds the exact-match filter from the query string.
// Empty parameters (?name=) do not constrain the listing.
func parseCourseFilter(ctx *gin.Context) (models.CourseFilter, error) {
	var q dto.CourseListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		return models.CourseFilter{}, apperrors.NewBadRequestError("invalid query parameters")
	}

	var filter models.CourseFilter
	if q.ID != nil && *q.ID != "" {
		id, err := strconv.ParseInt(*q.ID, 10, 64)
		if err != nil {
			return models.CourseFilter{}, apperrors.NewBadRequestError("id filter must be an integer")
		}
		filter.ID = &id
	}
	if q.Name != nil && *q.Name != "" {
		filter.Name = q.Name
	}
	return filter, nil
}

// ListCourses lists courses, optionally filtered by exact id and/or name
// @Summary List courses
// @Description Lists courses in creation order. Filters are exact-match and combined with AND.
// @Tags courses
// @Produce json
// @Param id query int false "Exact course ID"
// @Param name query string false "Exact course name"
// @Success 200 {array} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/ [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter, err := parseCourseFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.courseService.ListCourses(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/ [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// CreateCourse handles course creation
// @Summary Create a course
// @Tags courses
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /courses/ [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &models.Course{Name: req.Name})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.metrics.RecordMutation("create")
	ctx.JSON(http.StatusCreated, dto.NewCourseResponse(course))
}

// UpdateCourse replaces a course
// @Summary Replace a course
// @Tags courses
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCourseRequest true "Complete course data"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/ [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, &models.Course{ID: id, Name: req.Name})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.metrics.RecordMutation("update")
	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// PatchCourse partially updates a course
// @Summary Partially update a course
// @Description Only the supplied fields change; an empty body leaves the course untouched.
// @Tags courses
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.PatchCourseRequest true "Fields to change"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/ [patch]
func (c *CourseController) PatchCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchCourseRequest
	if err := ctx.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	course, err := c.courseService.PatchCourse(ctx, id, services.CoursePatch{Name: req.Name})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.metrics.RecordMutation("patch")
	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Tags courses
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 204 "Course deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/ [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.metrics.RecordMutation("delete")
	ctx.Status(http.StatusNoContent)
}
