package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

var hoursColumns = []string{"id", "provider_id", "day_of_week", "start_time", "end_time", "slot_increment_minutes", "is_available"}

func setupScheduleMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_GetWorkingHours(t *testing.T) {
	repo, mock := setupScheduleMock(t)

	mock.ExpectQuery(`SELECT id, provider_id, day_of_week, start_time, end_time, slot_increment_minutes, is_available FROM working_hours WHERE day_of_week = \$1 AND provider_id = \$2`).
		WithArgs(2, int64(1)).
		WillReturnRows(sqlmock.NewRows(hoursColumns).AddRow(int64(5), int64(1), 2, "09:00:00", "18:00:00", 20, true))

	hours, err := repo.GetWorkingHours(context.Background(), 1, time.Tuesday)
	require.NoError(t, err)

	assert.Equal(t, time.Tuesday, hours.DayOfWeek)
	assert.Equal(t, types.TimeString("09:00"), hours.StartTime)
	assert.Equal(t, types.TimeString("18:00"), hours.EndTime)
	assert.Equal(t, 20, hours.SlotIncrementMinutes)
	assert.True(t, hours.IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWorkingHours_NotFound(t *testing.T) {
	repo, mock := setupScheduleMock(t)

	mock.ExpectQuery(`FROM working_hours`).
		WillReturnRows(sqlmock.NewRows(hoursColumns))

	_, err := repo.GetWorkingHours(context.Background(), 1, time.Sunday)
	assert.ErrorIs(t, err, ErrWorkingHoursNotFound)
}

func TestRepository_ListWorkingHours(t *testing.T) {
	repo, mock := setupScheduleMock(t)

	mock.ExpectQuery(`FROM working_hours WHERE provider_id = \$1 ORDER BY day_of_week ASC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(hoursColumns).
			AddRow(int64(1), int64(1), 1, "09:00", "18:00", 15, true).
			AddRow(int64(2), int64(1), 6, "10:00", "14:00", 30, false))

	list, err := repo.ListWorkingHours(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, time.Saturday, list[1].DayOfWeek)
	assert.False(t, list[1].IsAvailable)
}

func TestRepository_GetUnavailabilities(t *testing.T) {
	repo, mock := setupScheduleMock(t)
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	period := domain.DayBounds(day)

	mock.ExpectQuery(`FROM unavailabilities WHERE provider_id = \$1 AND start_at < \$2 AND end_at > \$3 ORDER BY start_at ASC`).
		WithArgs(int64(1), period.End, period.Start).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "start_at", "end_at", "reason"}).
			AddRow(int64(3), int64(1), day.Add(12*time.Hour), day.Add(13*time.Hour), "lunch").
			AddRow(int64(4), int64(1), day.Add(16*time.Hour), day.Add(17*time.Hour), nil))

	list, err := repo.GetUnavailabilities(context.Background(), 1, period)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, 60, list[0].Interval.DurationMinutes())
	require.NotNil(t, list[0].Reason)
	assert.Equal(t, "lunch", *list[0].Reason)
	assert.Nil(t, list[1].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}
