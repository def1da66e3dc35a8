package usecase

import (
	"context"
	"errors"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBlockedPeriodNotFound = errors.New("blocked period not found")
	ErrInvalidBlockedPeriod  = errors.New("blocked period must start before it ends")
	ErrBlockedPeriodNotOwned = errors.New("blocked period does not belong to you")
)

type BlockedPeriodUsecase interface {
	CreateBlockedPeriod(ctx context.Context, req *dto.CreateBlockedPeriodRequest) (*dto.BlockedPeriodResponse, error)
	GetMyBlockedPeriods(ctx context.Context) (*dto.BlockedPeriodListResponse, error)
	DeleteBlockedPeriod(ctx context.Context, id uuid.UUID) error
}

type blockedPeriodUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	blockedRepo  repository.BlockedPeriodRepository
	auditService service.AuditService
}

func NewBlockedPeriodUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	blockedRepo repository.BlockedPeriodRepository,
	auditService service.AuditService,
) BlockedPeriodUsecase {
	return &blockedPeriodUsecase{
		db:           db,
		log:          log,
		blockedRepo:  blockedRepo,
		auditService: auditService,
	}
}

func (u *blockedPeriodUsecase) CreateBlockedPeriod(ctx context.Context, req *dto.CreateBlockedPeriodRequest) (*dto.BlockedPeriodResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if !req.StartAt.Before(req.EndAt) {
		return nil, ErrInvalidBlockedPeriod
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	period := &entity.BlockedPeriod{
		AdminUserID: adminID,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Reason:      req.Reason,
	}

	if err := u.blockedRepo.Create(tx, period); err != nil {
		u.log.Warnf("Failed to create blocked period for admin %s: %+v", adminID, err)
		return nil, err
	}

	u.auditService.Record(tx, &adminID, entity.AuditActionBlockCreate, entity.JSON{
		"blocked_period_id": period.ID.String(),
		"start_at":          period.StartAt,
		"end_at":            period.EndAt,
		"reason":            period.Reason,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BlockedPeriodToResponse(period), nil
}

func (u *blockedPeriodUsecase) GetMyBlockedPeriods(ctx context.Context) (*dto.BlockedPeriodListResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	periods, err := u.blockedRepo.FindByAdminID(u.db.WithContext(ctx), adminID)
	if err != nil {
		u.log.Warnf("Failed to find blocked periods for admin %s: %+v", adminID, err)
		return nil, err
	}

	return &dto.BlockedPeriodListResponse{
		BlockedPeriods: converter.BlockedPeriodsToResponses(periods),
		Total:          len(periods),
	}, nil
}

func (u *blockedPeriodUsecase) DeleteBlockedPeriod(ctx context.Context, id uuid.UUID) error {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	period, err := u.blockedRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find blocked period %s: %+v", id, err)
		return err
	}
	if period == nil {
		return ErrBlockedPeriodNotFound
	}
	if period.AdminUserID != adminID {
		return ErrBlockedPeriodNotOwned
	}

	tx := db.Begin()
	defer tx.Rollback()

	affected, err := u.blockedRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete blocked period %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrBlockedPeriodNotFound
	}

	u.auditService.Record(tx, &adminID, entity.AuditActionBlockDelete, entity.JSON{
		"blocked_period_id": id.String(),
	})

	return tx.Commit().Error
}
