package repository

import (
	"context"

	"github.com/hirelens/hirelens/internal/domain/model"
)

// NoopScheduleSource is the null object substituted when the schedules
// table is unavailable. Every read degrades to zero rows; nothing errors.
type NoopScheduleSource struct{}

// CountSchedules always reports zero.
func (NoopScheduleSource) CountSchedules(ctx context.Context, f ScheduleFilter) (int, error) {
	return 0, nil
}

// FindSchedules always reports no rows.
func (NoopScheduleSource) FindSchedules(ctx context.Context, f ScheduleFilter) ([]model.ScheduleEvent, error) {
	return nil, nil
}
