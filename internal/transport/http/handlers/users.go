package handlers

import (
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/dto"
)

type UsersHandler = ResourceHandler[domain.User, domain.UserCreate, domain.UserUpdate]

func NewUsersHandler(svc Service[domain.User, domain.UserCreate, domain.UserUpdate]) *UsersHandler {
	return &UsersHandler{
		svc:          svc,
		idParam:      "user_id",
		decodeCreate: decodeValidated[dto.CreateUserReq, domain.UserCreate],
		decodeUpdate: decodeValidated[dto.UpdateUserReq, domain.UserUpdate],
	}
}
