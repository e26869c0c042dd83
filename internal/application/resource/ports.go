package resource

import (
	"context"
	"time"
)

//go:generate mockgen -destination mock_publisher_test.go -package resource github.com/baechuer/real-time-ressys/services/resource-service/internal/application/resource EventPublisher

type Clock interface {
	Now() time.Time
}

// Store is the data store collaborator for one record type. A miss is reported
// through the found flag, never as an error.
type Store[R any] interface {
	List(ctx context.Context, offset, limit int) ([]R, error)
	Get(ctx context.Context, id int64) (R, bool, error)
	// Insert assigns the id. A uniqueness violation is a *domain.DuplicateError.
	Insert(ctx context.Context, rec R) (R, error)
	Update(ctx context.Context, rec R) (R, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, field, value string) (bool, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}
