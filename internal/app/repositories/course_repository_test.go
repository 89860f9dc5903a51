package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courses/internal/app/models"
)

func TestPostgresCourseRepository_Queries(t *testing.T) {
	r := NewPostgresCourseRepository(nil)

	sql, args, err := r.insertQuery(&models.Course{Name: "Ivan"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO courses (name) VALUES ($1) RETURNING id", sql)
	assert.Equal(t, []interface{}{"Ivan"}, args)

	sql, args, err = r.selectByIDQuery(7)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM courses WHERE id = $1 LIMIT 1", sql)
	assert.Equal(t, []interface{}{int64(7)}, args)

	sql, args, err = r.updateQuery(&models.Course{ID: 3, Name: "Ilya"})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE courses SET name = $1 WHERE id = $2", sql)
	assert.Equal(t, []interface{}{"Ilya", int64(3)}, args)

	sql, args, err = r.deleteQuery(3)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM courses WHERE id = $1", sql)
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestPostgresCourseRepository_ListQuery(t *testing.T) {
	r := NewPostgresCourseRepository(nil)
	id := int64(5)
	name := "Ivan"

	tests := []struct {
		name     string
		filter   models.CourseFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:    "no filter",
			filter:  models.CourseFilter{},
			wantSQL: "SELECT id, name FROM courses ORDER BY id ASC",
		},
		{
			name:     "id",
			filter:   models.CourseFilter{ID: &id},
			wantSQL:  "SELECT id, name FROM courses WHERE id = $1 ORDER BY id ASC",
			wantArgs: []interface{}{int64(5)},
		},
		{
			name:     "name",
			filter:   models.CourseFilter{Name: &name},
			wantSQL:  "SELECT id, name FROM courses WHERE name = $1 ORDER BY id ASC",
			wantArgs: []interface{}{"Ivan"},
		},
		{
			name:     "id and name",
			filter:   models.CourseFilter{ID: &id, Name: &name},
			wantSQL:  "SELECT id, name FROM courses WHERE id = $1 AND name = $2 ORDER BY id ASC",
			wantArgs: []interface{}{int64(5), "Ivan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := r.listQuery(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
