package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/courses/internal/app/models"
	appServices "github.com/yigit/courses/internal/app/services"
)

// CreateDefaultData inserts the configured courses when the store is empty.
// A non-empty store is left untouched so restarts do not duplicate data.
func CreateDefaultData(ctx context.Context, courseService appServices.CourseService, names []string, lgr zerolog.Logger) error {
	if len(names) == 0 {
		return nil
	}

	n, err := courseService.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("counting courses before seeding: %w", err)
	}
	if n > 0 {
		lgr.Debug().Int64("courses", n).Msg("Store not empty, skipping seed")
		return nil
	}

	lgr.Info().Int("courses", len(names)).Msg("Seeding default courses...")
	var finalErr error
	for _, name := range names {
		if _, err := courseService.CreateCourse(ctx, &appModels.Course{Name: name}); err != nil {
			lgr.Error().Err(err).Str("name", name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}
