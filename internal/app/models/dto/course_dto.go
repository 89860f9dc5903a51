package dto

import "github.com/yigit/courses/internal/app/models"

// CourseResponse is the wire representation of a course.
type CourseResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Distributed Systems"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=255"`
}

// UpdateCourseRequest carries the complete field set of a course (PUT)
type UpdateCourseRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=255"`
}

// PatchCourseRequest carries a subset of course fields (PATCH); nil fields are left unchanged
type PatchCourseRequest struct {
	Name *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
}

// CourseListQuery holds the optional exact-match filters of the list endpoint
type CourseListQuery struct {
	ID   *string `form:"id"`
	Name *string `form:"name"`
}

// NewCourseResponse converts a course model to its response DTO
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:   course.ID,
		Name: course.Name,
	}
}

// NewCourseListResponse converts a slice of courses; the result is never nil
// so an empty listing encodes as [].
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
