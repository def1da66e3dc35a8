package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/scheduling"
	"clinic-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDuplicateDayOfWeek = errors.New("duplicate day of week in rules")

type AvailabilityRuleUsecase interface {
	GetMyRules(ctx context.Context) (*dto.AvailabilityRuleListResponse, error)
	UpsertRules(ctx context.Context, req *dto.UpsertRulesRequest) (*dto.AvailabilityRuleListResponse, error)
}

type availabilityRuleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	ruleRepo     repository.AvailabilityRuleRepository
	auditService service.AuditService
}

func NewAvailabilityRuleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ruleRepo repository.AvailabilityRuleRepository,
	auditService service.AuditService,
) AvailabilityRuleUsecase {
	return &availabilityRuleUsecase{
		db:           db,
		log:          log,
		ruleRepo:     ruleRepo,
		auditService: auditService,
	}
}

func (u *availabilityRuleUsecase) GetMyRules(ctx context.Context) (*dto.AvailabilityRuleListResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	rules, err := u.ruleRepo.FindByAdminID(u.db.WithContext(ctx), adminID)
	if err != nil {
		u.log.Warnf("Failed to find rules for admin %s: %+v", adminID, err)
		return nil, err
	}

	return &dto.AvailabilityRuleListResponse{
		Rules: converter.RulesToResponses(rules),
		Total: len(rules),
	}, nil
}

// UpsertRules replaces the admin's weekly configuration in one transaction,
// the way the availability settings screen submits it. Each active rule is
// validated with the slot generator's own rule validation so a rule that
// would fail resolution is rejected at write time.
func (u *availabilityRuleUsecase) UpsertRules(ctx context.Context, req *dto.UpsertRulesRequest) (*dto.AvailabilityRuleListResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	seen := make(map[int]bool, len(req.Rules))
	for _, r := range req.Rules {
		if seen[r.DayOfWeek] {
			return nil, ErrDuplicateDayOfWeek
		}
		seen[r.DayOfWeek] = true

		if err := validateRuleRequest(r); err != nil {
			return nil, err
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for _, r := range req.Rules {
		rule := &entity.AvailabilityRule{
			AdminUserID:         adminID,
			DayOfWeek:           r.DayOfWeek,
			StartTime:           r.StartTime,
			EndTime:             r.EndTime,
			SlotDurationMinutes: r.SlotDurationMinutes,
			IsActive:            r.IsActive,
		}
		if err := u.ruleRepo.Upsert(tx, rule); err != nil {
			u.log.Warnf("Failed to upsert rule for admin %s day %d: %+v", adminID, r.DayOfWeek, err)
			return nil, err
		}
	}

	u.auditService.Record(tx, &adminID, entity.AuditActionRulesUpdate, entity.JSON{
		"rules": len(req.Rules),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	rules, err := u.ruleRepo.FindByAdminID(u.db.WithContext(ctx), adminID)
	if err != nil {
		u.log.Warnf("Failed to reload rules for admin %s: %+v", adminID, err)
		return nil, err
	}

	return &dto.AvailabilityRuleListResponse{
		Rules: converter.RulesToResponses(rules),
		Total: len(rules),
	}, nil
}

func validateRuleRequest(r dto.DayRuleRequest) error {
	start, err := scheduling.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %s", scheduling.ErrInvalidRule, err)
	}
	end, err := scheduling.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %s", scheduling.ErrInvalidRule, err)
	}

	rule := scheduling.DayRule{
		Weekday:      time.Weekday(r.DayOfWeek),
		Start:        start,
		End:          end,
		SlotDuration: time.Duration(r.SlotDurationMinutes) * time.Minute,
		Active:       r.IsActive,
	}
	return rule.Validate()
}
