package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/repository"
	"clinic-booking-api/internal/scheduling"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDayRule(t *testing.T) {
	stored := &entity.AvailabilityRule{
		DayOfWeek:           1,
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 30,
		IsActive:            true,
	}

	rule, err := toDayRule(stored)
	require.NoError(t, err)
	require.NotNil(t, rule)
	assert.Equal(t, time.Monday, rule.Weekday)
	assert.Equal(t, scheduling.TimeOfDay{Hour: 9}, rule.Start)
	assert.Equal(t, scheduling.TimeOfDay{Hour: 17}, rule.End)
	assert.Equal(t, 30*time.Minute, rule.SlotDuration)
	assert.True(t, rule.Active)
}

func TestToDayRuleNil(t *testing.T) {
	rule, err := toDayRule(nil)
	require.NoError(t, err)
	assert.Nil(t, rule)
}

func newTestAvailabilityUsecase(t *testing.T) (*availabilityUsecase, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	uc := NewAvailabilityUsecase(
		db,
		logrus.New(),
		repository.NewUserRepository(),
		repository.NewAvailabilityRuleRepository(),
		repository.NewBlockedPeriodRepository(),
		repository.NewAppointmentRepository(),
		scheduling.DefaultMaxAdvanceDays,
	).(*availabilityUsecase)
	return uc, mock
}

func TestGetDaySlotsInvalidDate(t *testing.T) {
	uc, mock := newTestAvailabilityUsecase(t)

	_, err := uc.GetDaySlots(context.Background(), uuid.New(), "06/09/2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDaySlotsAdminMissing(t *testing.T) {
	uc, mock := newTestAvailabilityUsecase(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := uc.GetDaySlots(context.Background(), uuid.New(), "2025-06-09")
	assert.ErrorIs(t, err, ErrAdminNotConfigured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDaySlotsAdminWithoutAnyRules(t *testing.T) {
	uc, mock := newTestAvailabilityUsecase(t)
	adminID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(adminRow(adminID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "availability_rules"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := uc.GetDaySlots(context.Background(), adminID, "2025-06-09")
	assert.ErrorIs(t, err, ErrAdminNotConfigured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDaySlotsDayOffIsNotAnError(t *testing.T) {
	uc, mock := newTestAvailabilityUsecase(t)
	adminID := uuid.New()

	// Configured admin, but no rule for the requested weekday: a day off,
	// reported as an empty slot list rather than an error.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(adminRow(adminID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "availability_rules"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT (.+) FROM "availability_rules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "blocked_periods"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := uc.GetDaySlots(context.Background(), adminID, "2025-06-09")
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func adminRow(adminID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "role_id", "email", "password", "full_name", "is_active"}).
		AddRow(adminID.String(), 1, "doctor@example.com", "x", "Dr Example", true)
}

func TestToDayRuleBadStoredTime(t *testing.T) {
	stored := &entity.AvailabilityRule{
		DayOfWeek:           1,
		StartTime:           "nine",
		EndTime:             "17:00",
		SlotDurationMinutes: 30,
		IsActive:            true,
	}

	_, err := toDayRule(stored)
	assert.Error(t, err)
}
