package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UsersToAdminResponses converts active admin users to the public directory shape
func UsersToAdminResponses(users []entity.User) []dto.AdminResponse {
	responses := make([]dto.AdminResponse, len(users))
	for i, user := range users {
		responses[i] = dto.AdminResponse{
			ID:       user.ID,
			FullName: user.FullName,
		}
	}
	return responses
}
