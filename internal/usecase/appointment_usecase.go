package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/scheduling"
	"clinic-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrNotCancellable      = errors.New("appointment is no longer booked")
	ErrInvalidInterval     = errors.New("appointment must start before it ends")
	ErrDateNotBookable     = errors.New("date is not open for booking")
	// ErrSlotUnavailable means the requested slot is blocked, taken, in the
	// past, or was won by a concurrent booking. Clients should refresh
	// availability and retry.
	ErrSlotUnavailable = errors.New("slot is not available")
)

type AppointmentUsecase interface {
	// Patient operations
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CancelMyAppointment(ctx context.Context, appointmentID uuid.UUID) error

	// Admin operations
	GetAdminAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error)
	CancelAppointmentAsAdmin(ctx context.Context, appointmentID uuid.UUID) error
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	ruleRepo        repository.AvailabilityRuleRepository
	appointmentRepo repository.AppointmentRepository
	resolver        dayResolver
	slotHolds       *service.SlotHoldService
	auditService    service.AuditService
	maxAdvanceDays  int
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	ruleRepo repository.AvailabilityRuleRepository,
	blockedRepo repository.BlockedPeriodRepository,
	appointmentRepo repository.AppointmentRepository,
	slotHolds *service.SlotHoldService,
	auditService service.AuditService,
	maxAdvanceDays int,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		ruleRepo:        ruleRepo,
		appointmentRepo: appointmentRepo,
		resolver: dayResolver{
			log:             log,
			ruleRepo:        ruleRepo,
			blockedRepo:     blockedRepo,
			appointmentRepo: appointmentRepo,
		},
		slotHolds:      slotHolds,
		auditService:   auditService,
		maxAdvanceDays: maxAdvanceDays,
		now:            time.Now,
	}
}

// CreateAppointment books a slot for the logged-in patient.
//
// Flow:
//  1. Validate the target admin and the calendar-day eligibility window
//  2. Take a short-lived Redis hold on the slot to absorb concurrent clicks
//  3. Inside a transaction, re-resolve the day's availability and verify the
//     requested interval is exactly one of its available slots
//  4. Insert; the appointments exclusion constraint is the final arbiter if
//     a concurrent insert slipped past the hold
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if !req.StartAt.Before(req.EndAt) {
		return nil, ErrInvalidInterval
	}

	db := u.db.WithContext(ctx)
	now := u.now()

	admin, err := u.userRepo.FindActiveAdmin(db, req.AdminUserID)
	if err != nil {
		u.log.Warnf("Failed to find admin %s: %+v", req.AdminUserID, err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotConfigured
	}

	rules, err := u.ruleRepo.FindByAdminID(db, req.AdminUserID)
	if err != nil {
		u.log.Warnf("Failed to find rules for admin %s: %+v", req.AdminUserID, err)
		return nil, err
	}
	if len(rules) == 0 {
		return nil, ErrAdminNotConfigured
	}

	activeDays := make(map[time.Weekday]bool, len(rules))
	for _, rule := range rules {
		if rule.IsActive {
			activeDays[rule.Weekday()] = true
		}
	}

	start := req.StartAt.UTC()
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	// Day-level gate first, then slot-level resolution below.
	if !scheduling.IsDateBookable(day, now.UTC(), activeDays, u.maxAdvanceDays) {
		return nil, ErrDateNotBookable
	}

	holdToken, err := u.slotHolds.Acquire(ctx, req.AdminUserID, start)
	if err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to acquire slot hold for admin %s: %+v", req.AdminUserID, err)
		return nil, err
	}
	defer u.slotHolds.Release(ctx, req.AdminUserID, start, holdToken)

	appointment := &entity.Appointment{
		PatientUserID:  patientID,
		AdminUserID:    req.AdminUserID,
		StartAt:        start,
		EndAt:          req.EndAt.UTC(),
		ReasonForVisit: req.ReasonForVisit,
		Status:         entity.AppointmentStatusBooked,
	}

	tx := db.Begin()
	defer tx.Rollback()

	slots, err := u.resolver.resolveDay(tx, req.AdminUserID, day, now)
	if err != nil {
		return nil, err
	}
	if !matchesAvailableSlot(slots, appointment.StartAt, appointment.EndAt) {
		return nil, ErrSlotUnavailable
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isExclusionViolation(err) {
			return nil, ErrSlotUnavailable
		}
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &patientID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"admin_user_id":  req.AdminUserID.String(),
		"start_at":       appointment.StartAt,
		"end_at":         appointment.EndAt,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, admin=%s, start=%s", appointment.ID, req.AdminUserID, appointment.StartAt)

	// Reload with patient and admin info for the response
	fullAppointment, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || fullAppointment == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(fullAppointment), nil
}

// matchesAvailableSlot verifies the requested interval is exactly one of the
// day's generated slots and that it is still free. Clients cannot book
// arbitrary intervals, only what the resolver offered.
func matchesAvailableSlot(slots []scheduling.Slot, start, end time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) && s.End.Equal(end) {
			return s.Available
		}
	}
	return false
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) CancelMyAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	return u.transition(ctx, appointmentID, entity.AppointmentStatusCancelledByPatient, func(a *entity.Appointment) error {
		if a.PatientUserID != patientID {
			return ErrAppointmentNotOwned
		}
		return nil
	}, &patientID)
}

func (u *appointmentUsecase) GetAdminAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	filter := &entity.AppointmentFilter{AdminUserID: adminID}
	if query != nil {
		filter.StartAt = query.StartAt
		filter.EndAt = query.EndAt
		filter.Status = entity.AppointmentStatus(query.Status)
	}

	appointments, err := u.appointmentRepo.FindWithFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments for admin %s: %+v", adminID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) CancelAppointmentAsAdmin(ctx context.Context, appointmentID uuid.UUID) error {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	return u.transition(ctx, appointmentID, entity.AppointmentStatusCancelledByAdmin, func(a *entity.Appointment) error {
		if a.AdminUserID != adminID {
			return ErrAppointmentNotOwned
		}
		return nil
	}, &adminID)
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	return u.transition(ctx, appointmentID, entity.AppointmentStatusCompleted, func(a *entity.Appointment) error {
		if a.AdminUserID != adminID {
			return ErrAppointmentNotOwned
		}
		return nil
	}, &adminID)
}

// transition moves a booked appointment to a terminal status. The status
// update is conditional on the row still being booked, so two concurrent
// transitions cannot both succeed.
func (u *appointmentUsecase) transition(ctx context.Context, appointmentID uuid.UUID, to entity.AppointmentStatus, authorize func(*entity.Appointment) error, actorID *uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := authorize(appointment); err != nil {
		return err
	}
	if !appointment.IsBooked() {
		return ErrNotCancellable
	}

	tx := db.Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.TransitionStatus(tx, appointmentID, entity.AppointmentStatusBooked, to)
	if err != nil {
		u.log.Warnf("Failed to transition appointment %s to %s: %+v", appointmentID, to, err)
		return err
	}
	if affected == 0 {
		return ErrNotCancellable
	}

	action := entity.AuditActionAppointmentCancel
	if to == entity.AppointmentStatusCompleted {
		action = entity.AuditActionAppointmentComplete
	}
	u.auditService.Record(tx, actorID, action, entity.JSON{
		"appointment_id": appointmentID.String(),
		"status":         string(to),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment %s transitioned to %s", appointmentID, to)
	return nil
}
