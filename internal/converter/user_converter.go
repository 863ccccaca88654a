package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password
// hash never crosses this boundary.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
