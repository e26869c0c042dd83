package todo

import (
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/application/resource"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

type (
	Service = resource.Service[domain.Todo, domain.TodoCreate, domain.TodoUpdate]
	Store   = resource.Store[domain.Todo]
)

// Schema has no uniqueness rule beyond the id.
func Schema() resource.Schema[domain.Todo, domain.TodoCreate, domain.TodoUpdate] {
	return resource.Schema[domain.Todo, domain.TodoCreate, domain.TodoUpdate]{
		Name:    "Todo",
		Routing: "todo",
		Build:   domain.NewTodo,
		Apply:   domain.Todo.ApplyUpdate,
		ID:      func(t domain.Todo) int64 { return t.ID },
	}
}

func New(store Store, pub resource.EventPublisher, clock resource.Clock) *Service {
	return resource.New(store, Schema(), pub, clock)
}
