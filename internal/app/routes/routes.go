package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courses/internal/app/controllers"
)

// Route is one entry of the explicit route table
type Route struct {
	Name    string
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// CourseRoutes names every operation of the course resource
func CourseRoutes(courseController *controllers.CourseController) []Route {
	return []Route{
		{Name: "courses-list", Method: http.MethodGet, Path: "/courses/", Handler: courseController.ListCourses},
		{Name: "courses-create", Method: http.MethodPost, Path: "/courses/", Handler: courseController.CreateCourse},
		{Name: "courses-detail", Method: http.MethodGet, Path: "/courses/:id/", Handler: courseController.GetCourseByID},
		{Name: "courses-partial-update", Method: http.MethodPatch, Path: "/courses/:id/", Handler: courseController.PatchCourse},
		{Name: "courses-update", Method: http.MethodPut, Path: "/courses/:id/", Handler: courseController.UpdateCourse},
		{Name: "courses-delete", Method: http.MethodDelete, Path: "/courses/:id/", Handler: courseController.DeleteCourse},
	}
}

// SetupRouter registers the route table on router
func SetupRouter(router gin.IRoutes, table []Route) {
	for _, r := range table {
		router.Handle(r.Method, r.Path, r.Handler)
	}
}
