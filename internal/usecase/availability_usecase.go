package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrAdminNotConfigured distinguishes "no doctor in the system" (or no
	// availability data at all) from "the doctor has this day off".
	ErrAdminNotConfigured = errors.New("doctor is not configured")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)

type AvailabilityUsecase interface {
	GetAdmins(ctx context.Context) (*dto.AdminListResponse, error)
	GetWorkingDays(ctx context.Context, adminID uuid.UUID) (*dto.WorkingDaysResponse, error)
	GetDaySlots(ctx context.Context, adminID uuid.UUID, date string) (*dto.DaySlotsResponse, error)
}

type availabilityUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	ruleRepo       repository.AvailabilityRuleRepository
	resolver       dayResolver
	maxAdvanceDays int
	now            func() time.Time
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	ruleRepo repository.AvailabilityRuleRepository,
	blockedRepo repository.BlockedPeriodRepository,
	appointmentRepo repository.AppointmentRepository,
	maxAdvanceDays int,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		ruleRepo: ruleRepo,
		resolver: dayResolver{
			log:             log,
			ruleRepo:        ruleRepo,
			blockedRepo:     blockedRepo,
			appointmentRepo: appointmentRepo,
		},
		maxAdvanceDays: maxAdvanceDays,
		now:            time.Now,
	}
}

func (u *availabilityUsecase) GetAdmins(ctx context.Context) (*dto.AdminListResponse, error) {
	admins, err := u.userRepo.FindActiveAdmins(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active admins: %+v", err)
		return nil, err
	}

	return &dto.AdminListResponse{
		Admins: converter.UsersToAdminResponses(admins),
		Total:  len(admins),
	}, nil
}

func (u *availabilityUsecase) GetWorkingDays(ctx context.Context, adminID uuid.UUID) (*dto.WorkingDaysResponse, error) {
	db := u.db.WithContext(ctx)

	admin, err := u.userRepo.FindActiveAdmin(db, adminID)
	if err != nil {
		u.log.Warnf("Failed to find admin %s: %+v", adminID, err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotConfigured
	}

	rules, err := u.ruleRepo.FindByAdminID(db, adminID)
	if err != nil {
		u.log.Warnf("Failed to find rules for admin %s: %+v", adminID, err)
		return nil, err
	}

	activeDays := make([]int, 0, len(rules))
	for _, rule := range rules {
		if rule.IsActive {
			activeDays = append(activeDays, rule.DayOfWeek)
		}
	}

	return &dto.WorkingDaysResponse{
		AdminID:        adminID,
		ActiveDays:     activeDays,
		MaxAdvanceDays: u.maxAdvanceDays,
	}, nil
}

// GetDaySlots resolves the candidate slots for one calendar date on an
// admin's calendar. An empty slot list with no error means the admin has
// that day off; ErrAdminNotConfigured means there is no usable availability
// data at all.
func (u *availabilityUsecase) GetDaySlots(ctx context.Context, adminID uuid.UUID, date string) (*dto.DaySlotsResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	admin, err := u.userRepo.FindActiveAdmin(db, adminID)
	if err != nil {
		u.log.Warnf("Failed to find admin %s: %+v", adminID, err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotConfigured
	}

	ruleCount, err := u.ruleRepo.CountByAdminID(db, adminID)
	if err != nil {
		u.log.Warnf("Failed to count rules for admin %s: %+v", adminID, err)
		return nil, err
	}
	if ruleCount == 0 {
		return nil, ErrAdminNotConfigured
	}

	slots, err := u.resolver.resolveDay(db, adminID, day, u.now())
	if err != nil {
		return nil, err
	}

	return &dto.DaySlotsResponse{
		AdminID: adminID,
		Date:    date,
		Slots:   converter.SlotsToResponses(slots),
	}, nil
}

// dayResolver gathers the day's rule, blocked periods and booked appointments
// and runs the slot resolution. Shared between the read path and the booking
// path, which re-runs it inside its transaction.
type dayResolver struct {
	log             *logrus.Logger
	ruleRepo        repository.AvailabilityRuleRepository
	blockedRepo     repository.BlockedPeriodRepository
	appointmentRepo repository.AppointmentRepository
}

func (r *dayResolver) resolveDay(db *gorm.DB, adminID uuid.UUID, day time.Time, now time.Time) ([]scheduling.Slot, error) {
	rule, err := r.ruleRepo.FindByAdminAndDay(db, adminID, int(day.Weekday()))
	if err != nil {
		r.log.Warnf("Failed to find rule for admin %s: %+v", adminID, err)
		return nil, err
	}

	dayRule, err := toDayRule(rule)
	if err != nil {
		r.log.Warnf("Misconfigured rule for admin %s: %+v", adminID, err)
		return nil, err
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	blockedPeriods, err := r.blockedRepo.FindOverlappingRange(db, adminID, dayStart, dayEnd)
	if err != nil {
		r.log.Warnf("Failed to find blocked periods for admin %s: %+v", adminID, err)
		return nil, err
	}

	appointments, err := r.appointmentRepo.FindBookedInRange(db, adminID, dayStart, dayEnd)
	if err != nil {
		r.log.Warnf("Failed to find appointments for admin %s: %+v", adminID, err)
		return nil, err
	}

	blocked := make([]scheduling.Interval, len(blockedPeriods))
	for i, b := range blockedPeriods {
		blocked[i] = scheduling.Interval{Start: b.StartAt, End: b.EndAt}
	}

	booked := make([]scheduling.Interval, 0, len(appointments))
	for _, a := range appointments {
		if a.Status.OccupiesCapacity() {
			booked = append(booked, scheduling.Interval{Start: a.StartAt, End: a.EndAt})
		}
	}

	return scheduling.Resolve(day, dayRule, blocked, booked, now)
}

// toDayRule maps a stored rule to its scheduling form. A nil rule stays nil
// (no rule for that weekday).
func toDayRule(rule *entity.AvailabilityRule) (*scheduling.DayRule, error) {
	if rule == nil {
		return nil, nil
	}

	start, err := scheduling.ParseTimeOfDay(rule.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := scheduling.ParseTimeOfDay(rule.EndTime)
	if err != nil {
		return nil, err
	}

	return &scheduling.DayRule{
		Weekday:      rule.Weekday(),
		Start:        start,
		End:          end,
		SlotDuration: time.Duration(rule.SlotDurationMinutes) * time.Minute,
		Active:       rule.IsActive,
	}, nil
}
