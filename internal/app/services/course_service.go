package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yigit/courses/internal/app/models"
	"github.com/yigit/courses/internal/app/repositories"
	"github.com/yigit/courses/internal/pkg/apperrors"
)

// MaxCourseNameLength matches the width of courses.name
const MaxCourseNameLength = 255

// CoursePatch holds the fields of a partial update; nil means unchanged.
type CoursePatch struct {
	Name *string
}

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	PatchCourse(ctx context.Context, id int64, patch CoursePatch) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	CountCourses(ctx context.Context) (int64, error)
}

type courseServiceImpl struct {
	courseRepo repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

func validateCourseName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name", "name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxCourseNameLength {
		return apperrors.NewValidationError("name", fmt.Sprintf("name must be at most %d characters", MaxCourseNameLength))
	}
	return nil
}

func validateCourseID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrCourseNotFound)
	}
	return nil
}

// translateRepoError maps repository errors onto application sentinels
func translateRepoError(err error, op string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrCourseNotFound
	}
	if errors.Is(err, repositories.ErrInvalidData) {
		return apperrors.NewValidationError("", err.Error())
	}
	return fmt.Errorf("error %s course: %w", op, err)
}

func (s *courseServiceImpl) ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := validateCourseID(id); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "retrieving")
	}
	return course, nil
}

// CreateCourse stores a new course; any id on the input is ignored.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if err := validateCourseName(course.Name); err != nil {
		return nil, err
	}

	id, err := s.courseRepo.Create(ctx, &models.Course{Name: course.Name})
	if err != nil {
		return nil, translateRepoError(err, "creating")
	}
	return &models.Course{ID: id, Name: course.Name}, nil
}

// UpdateCourse replaces every mutable field of the course identified by course.ID.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if err := validateCourseID(course.ID); err != nil {
		return nil, err
	}
	if err := validateCourseName(course.Name); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, translateRepoError(err, "updating")
	}
	return s.GetCourseByID(ctx, course.ID)
}

// PatchCourse applies the non-nil fields of patch to an existing course.
func (s *courseServiceImpl) PatchCourse(ctx context.Context, id int64, patch CoursePatch) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name == nil {
		return course, nil
	}
	if err := validateCourseName(*patch.Name); err != nil {
		return nil, err
	}

	course.Name = *patch.Name
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, translateRepoError(err, "updating")
	}
	return course, nil
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := validateCourseID(id); err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "deleting")
	}
	return nil
}

func (s *courseServiceImpl) CountCourses(ctx context.Context) (int64, error) {
	n, err := s.courseRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return n, nil
}
