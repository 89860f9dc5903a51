package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/courses/internal/app/models"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidData is returned when the store rejects a value (e.g. too long for its column).
	ErrInvalidData = errors.New("invalid data")
)

// CourseRepository is the persistence contract for courses. List returns
// courses in insertion order.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository CourseRepository
}

// NewRepositories initializes all repositories on top of a Postgres pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository: NewPostgresCourseRepository(db),
	}
}

// NewMemoryRepositories initializes process-local repositories
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		CourseRepository: NewMemoryCourseRepository(),
	}
}
