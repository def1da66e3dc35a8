package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/repository"
	"clinic-booking-api/internal/scheduling"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func contextWithUser(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

func newTestAppointmentUsecase(t *testing.T) (*appointmentUsecase, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	uc := NewAppointmentUsecase(
		db,
		logrus.New(),
		repository.NewUserRepository(),
		repository.NewAvailabilityRuleRepository(),
		repository.NewBlockedPeriodRepository(),
		repository.NewAppointmentRepository(),
		nil,
		nil,
		scheduling.DefaultMaxAdvanceDays,
	).(*appointmentUsecase)
	return uc, mock
}

func TestMatchesAvailableSlot(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 9, hour, minute, 0, 0, time.UTC)
	}
	slots := []scheduling.Slot{
		{Start: at(9, 0), End: at(9, 30), Available: true},
		{Start: at(9, 30), End: at(10, 0), Available: false},
		{Start: at(10, 0), End: at(10, 30), Available: true},
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"exact available slot", at(9, 0), at(9, 30), true},
		{"exact but unavailable slot", at(9, 30), at(10, 0), false},
		{"interval not offered", at(9, 15), at(9, 45), false},
		{"right start wrong end", at(9, 0), at(10, 0), false},
		{"outside the day window", at(8, 0), at(8, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchesAvailableSlot(slots, tt.start, tt.end))
		})
	}
}

func TestCreateAppointmentDateNotBookable(t *testing.T) {
	uc, mock := newTestAppointmentUsecase(t)

	patientID := uuid.New()
	adminID := uuid.New()

	// Only Monday is active; the request targets a Tuesday.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role_id", "email", "password", "full_name", "is_active"}).
			AddRow(adminID.String(), 1, "doctor@example.com", "x", "Dr Example", true))
	mock.ExpectQuery(`SELECT (.+) FROM "availability_rules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "admin_user_id", "day_of_week", "start_time", "end_time", "slot_duration_minutes", "is_active"}).
			AddRow(uuid.New().String(), adminID.String(), 1, "09:00", "17:00", 30, true))

	uc.now = func() time.Time { return time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC) }

	_, err := uc.CreateAppointment(contextWithUser(patientID), &dto.CreateAppointmentRequest{
		AdminUserID: adminID,
		StartAt:     time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDateNotBookable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentAdminNotConfigured(t *testing.T) {
	uc, mock := newTestAppointmentUsecase(t)

	patientID := uuid.New()
	adminID := uuid.New()

	// No active admin with that ID.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := uc.CreateAppointment(contextWithUser(patientID), &dto.CreateAppointmentRequest{
		AdminUserID: adminID,
		StartAt:     time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAdminNotConfigured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentInvalidInterval(t *testing.T) {
	uc, _ := newTestAppointmentUsecase(t)

	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	_, err := uc.CreateAppointment(contextWithUser(uuid.New()), &dto.CreateAppointmentRequest{
		AdminUserID: uuid.New(),
		StartAt:     start,
		EndAt:       start,
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func expectAppointmentByID(mock sqlmock.Sqlmock, id, patientID, adminID uuid.UUID, status string) {
	mock.ExpectQuery(`SELECT (.+) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_user_id", "admin_user_id", "start_at", "end_at", "status"}).
			AddRow(id.String(), patientID.String(), adminID.String(),
				time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
				status))
	// Patient and Admin preloads.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func TestCancelMyAppointmentNotOwned(t *testing.T) {
	uc, mock := newTestAppointmentUsecase(t)

	appointmentID := uuid.New()
	expectAppointmentByID(mock, appointmentID, uuid.New(), uuid.New(), "booked")

	err := uc.CancelMyAppointment(contextWithUser(uuid.New()), appointmentID)
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelMyAppointmentAlreadyFinished(t *testing.T) {
	uc, mock := newTestAppointmentUsecase(t)

	patientID := uuid.New()
	appointmentID := uuid.New()
	expectAppointmentByID(mock, appointmentID, patientID, uuid.New(), "completed")

	err := uc.CancelMyAppointment(contextWithUser(patientID), appointmentID)
	assert.ErrorIs(t, err, ErrNotCancellable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelMyAppointmentConcurrentTransitionLoses(t *testing.T) {
	uc, mock := newTestAppointmentUsecase(t)

	patientID := uuid.New()
	appointmentID := uuid.New()
	expectAppointmentByID(mock, appointmentID, patientID, uuid.New(), "booked")

	// The conditional update matches zero rows: another transition got there
	// between the read and the write.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := uc.CancelMyAppointment(contextWithUser(patientID), appointmentID)
	assert.ErrorIs(t, err, ErrNotCancellable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelMyAppointmentNotFound(t *testing.T) {
	uc, mock := newTestAppointmentUsecase(t)

	mock.ExpectQuery(`SELECT (.+) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := uc.CancelMyAppointment(contextWithUser(uuid.New()), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
