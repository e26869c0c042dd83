package dto

import "github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"

// Create mappers expect a request that already passed validate.Struct.

func (r CreateTodoReq) ToDomain() domain.TodoCreate {
	return domain.TodoCreate{Title: deref(r.Title), Completed: r.Completed}
}

func (r UpdateTodoReq) ToDomain() domain.TodoUpdate {
	return domain.TodoUpdate{Title: r.Title, Completed: r.Completed}
}

func (r CreateUserReq) ToDomain() domain.UserCreate {
	return domain.UserCreate{
		Name:     deref(r.Name),
		Email:    deref(r.Email),
		IsActive: r.IsActive,
		Role:     r.Role,
	}
}

func (r UpdateUserReq) ToDomain() domain.UserUpdate {
	return domain.UserUpdate{
		Name:     r.Name,
		Email:    r.Email,
		IsActive: r.IsActive,
		Role:     r.Role,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
