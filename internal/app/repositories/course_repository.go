package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/courses/internal/app/models"
	"github.com/yigit/courses/internal/pkg/dberrors"
	"github.com/yigit/courses/internal/pkg/logger"
)

const coursesTable = "courses"

// PostgresCourseRepository handles course database operations
type PostgresCourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresCourseRepository creates a new PostgresCourseRepository
func NewPostgresCourseRepository(db *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PostgresCourseRepository) insertQuery(course *models.Course) (string, []interface{}, error) {
	return r.sb.Insert(coursesTable).
		Columns("name").
		Values(course.Name).
		Suffix("RETURNING id").
		ToSql()
}

func (r *PostgresCourseRepository) selectByIDQuery(id int64) (string, []interface{}, error) {
	return r.sb.Select("id", "name").
		From(coursesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
}

func (r *PostgresCourseRepository) listQuery(filter models.CourseFilter) (string, []interface{}, error) {
	q := r.sb.Select("id", "name").From(coursesTable)
	if filter.ID != nil {
		q = q.Where(squirrel.Eq{"id": *filter.ID})
	}
	if filter.Name != nil {
		q = q.Where(squirrel.Eq{"name": *filter.Name})
	}
	return q.OrderBy("id ASC").ToSql()
}

func (r *PostgresCourseRepository) updateQuery(course *models.Course) (string, []interface{}, error) {
	return r.sb.Update(coursesTable).
		Set("name", course.Name).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
}

func (r *PostgresCourseRepository) deleteQuery(id int64) (string, []interface{}, error) {
	return r.sb.Delete(coursesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// Create inserts a course and returns its assigned id
func (r *PostgresCourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.insertQuery(course)
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsConstraintError(err) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course by ID
func (r *PostgresCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectByIDQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// List retrieves courses matching filter, ordered by id
func (r *PostgresCourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	sql, args, err := r.listQuery(filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during list")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update overwrites the mutable fields of an existing course
func (r *PostgresCourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.updateQuery(course)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConstraintError(err) {
			return fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a course by ID
func (r *PostgresCourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.deleteQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of stored courses
func (r *PostgresCourseRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(coursesTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting courses")
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return n, nil
}
