package handlers

import (
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/dto"
)

type TodosHandler = ResourceHandler[domain.Todo, domain.TodoCreate, domain.TodoUpdate]

func NewTodosHandler(svc Service[domain.Todo, domain.TodoCreate, domain.TodoUpdate]) *TodosHandler {
	return &TodosHandler{
		svc:          svc,
		idParam:      "todo_id",
		decodeCreate: decodeValidated[dto.CreateTodoReq, domain.TodoCreate],
		decodeUpdate: decodeValidated[dto.UpdateTodoReq, domain.TodoUpdate],
	}
}
