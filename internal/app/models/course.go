package models

// Course is the single resource served by the API.
type Course struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Distributed Systems"`
}

// CourseFilter narrows a course listing. Nil fields do not constrain the
// result; set fields must match exactly and are combined with AND.
type CourseFilter struct {
	ID   *int64
	Name *string
}

// IsEmpty reports whether the filter constrains nothing.
func (f CourseFilter) IsEmpty() bool {
	return f.ID == nil && f.Name == nil
}

// Matches reports whether c satisfies every set field of the filter.
func (f CourseFilter) Matches(c *Course) bool {
	if f.ID != nil && c.ID != *f.ID {
		return false
	}
	if f.Name != nil && c.Name != *f.Name {
		return false
	}
	return true
}
