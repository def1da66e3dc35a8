package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	// FindActiveAdmin returns the user only if it is an active admin account.
	FindActiveAdmin(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindActiveAdmins(db *gorm.DB) ([]entity.User, error)
}
