package repositories

import (
	"context"
	"sync"

	"github.com/yigit/courses/internal/app/models"
)

// MemoryCourseRepository keeps courses in process memory. Ids come from a
// counter that never rewinds, so deleted ids are not reused.
type MemoryCourseRepository struct {
	mu      sync.RWMutex
	lastID  int64
	order   []int64
	courses map[int64]models.Course
}

// NewMemoryCourseRepository creates an empty in-memory store
func NewMemoryCourseRepository() *MemoryCourseRepository {
	return &MemoryCourseRepository{
		courses: make(map[int64]models.Course),
	}
}

func (r *MemoryCourseRepository) Create(_ context.Context, course *models.Course) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	id := r.lastID
	r.courses[id] = models.Course{ID: id, Name: course.Name}
	r.order = append(r.order, id)
	return id, nil
}

func (r *MemoryCourseRepository) GetByID(_ context.Context, id int64) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *MemoryCourseRepository) List(_ context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := []*models.Course{}
	for _, id := range r.order {
		c := r.courses[id]
		if filter.Matches(&c) {
			courses = append(courses, &c)
		}
	}
	return courses, nil
}

func (r *MemoryCourseRepository) Update(_ context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[course.ID]; !ok {
		return ErrNotFound
	}
	r.courses[course.ID] = models.Course{ID: course.ID, Name: course.Name}
	return nil
}

func (r *MemoryCourseRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[id]; !ok {
		return ErrNotFound
	}
	delete(r.courses, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryCourseRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.courses)), nil
}
