package user

import (
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/application/resource"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

const (
	FieldEmail = "email"

	MsgEmailTaken = "Email already registered"
)

type (
	Service = resource.Service[domain.User, domain.UserCreate, domain.UserUpdate]
	Store   = resource.Store[domain.User]
)

// Schema enforces email uniqueness on create. Updates are not pre-checked; the
// store's unique index still rejects a colliding email.
func Schema() resource.Schema[domain.User, domain.UserCreate, domain.UserUpdate] {
	return resource.Schema[domain.User, domain.UserCreate, domain.UserUpdate]{
		Name:    "User",
		Routing: "user",
		Build:   domain.NewUser,
		Apply:   domain.User.ApplyUpdate,
		ID:      func(u domain.User) int64 { return u.ID },
		Unique: []resource.Unique[domain.UserCreate]{{
			Field:   FieldEmail,
			Value:   func(in domain.UserCreate) string { return in.Email },
			Message: MsgEmailTaken,
		}},
	}
}

func New(store Store, pub resource.EventPublisher, clock resource.Clock) *Service {
	return resource.New(store, Schema(), pub, clock)
}
