package dto

import "github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"

type CreateUserReq struct {
	Name     *string                      `json:"name" validate:"required"`
	Email    *string                      `json:"email" validate:"required"`
	IsActive domain.Optional[bool]        `json:"is_active"`
	Role     domain.Optional[domain.Role] `json:"role"`
}

type UpdateUserReq struct {
	Name     domain.Optional[string]      `json:"name"`
	Email    domain.Optional[string]      `json:"email"`
	IsActive domain.Optional[bool]        `json:"is_active"`
	Role     domain.Optional[domain.Role] `json:"role"`
}
