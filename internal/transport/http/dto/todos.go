package dto

import "github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"

type CreateTodoReq struct {
	Title     *string              `json:"title" validate:"required"`
	Completed domain.Optional[bool] `json:"completed"`
}

type UpdateTodoReq struct {
	Title     domain.Optional[string] `json:"title"`
	Completed domain.Optional[bool]   `json:"completed"`
}
