package resource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

const (
	DefaultOffset = 0
	DefaultLimit  = 100
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Service implements list/get/create/update/delete for one record type.
// It keeps no state besides its collaborators and is safe for concurrent use.
type Service[R, C, U any] struct {
	store  Store[R]
	schema Schema[R, C, U]
	pub    EventPublisher
	clock  Clock
}

func New[R, C, U any](store Store[R], schema Schema[R, C, U], pub EventPublisher, clock Clock) *Service[R, C, U] {
	if pub == nil {
		pub = NoopPublisher{}
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Service[R, C, U]{store: store, schema: schema, pub: pub, clock: clock}
}

// Deleted acknowledges a successful delete.
type Deleted struct {
	ID      int64
	Message string
}

func (s *Service[R, C, U]) Name() string { return s.schema.Name }

func (s *Service[R, C, U]) List(ctx context.Context, offset, limit int) ([]R, error) {
	if offset < 0 {
		return nil, domain.ErrValidationMeta("invalid query param", map[string]string{
			"skip": "must be >= 0",
		})
	}
	if limit < 0 {
		return nil, domain.ErrValidationMeta("invalid query param", map[string]string{
			"limit": "must be >= 0",
		})
	}

	items, err := s.store.List(ctx, offset, limit)
	if err != nil {
		return nil, s.storeErr("list", err)
	}
	if items == nil {
		items = []R{}
	}
	return items, nil
}

func (s *Service[R, C, U]) Get(ctx context.Context, id int64) (R, error) {
	rec, found, err := s.store.Get(ctx, id)
	if err != nil {
		var zero R
		return zero, s.storeErr("get", err)
	}
	if !found {
		var zero R
		return zero, s.notFound()
	}
	return rec, nil
}

func (s *Service[R, C, U]) Create(ctx context.Context, in C) (R, error) {
	var zero R

	rec, err := s.schema.Build(in)
	if err != nil {
		return zero, err
	}

	for _, u := range s.schema.Unique {
		taken, err := s.store.Exists(ctx, u.Field, u.Value(in))
		if err != nil {
			return zero, s.storeErr("exists", err)
		}
		if taken {
			return zero, domain.ErrConflict(u.Message)
		}
	}

	created, err := s.store.Insert(ctx, rec)
	if err != nil {
		// the store's unique index catches what the pre-check raced past
		if de, ok := domain.IsDuplicate(err); ok {
			return zero, domain.ErrConflict(s.schema.uniqueMessage(de.Field))
		}
		return zero, s.storeErr("insert", err)
	}

	s.publish(ctx, ActionCreated, s.schema.ID(created), created)
	return created, nil
}

func (s *Service[R, C, U]) Update(ctx context.Context, id int64, in U) (R, error) {
	var zero R

	current, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	patched, err := s.schema.Apply(current, in)
	if err != nil {
		return zero, err
	}

	updated, found, err := s.store.Update(ctx, patched)
	if err != nil {
		if de, ok := domain.IsDuplicate(err); ok {
			return zero, domain.ErrConflict(s.schema.uniqueMessage(de.Field))
		}
		return zero, s.storeErr("update", err)
	}
	if !found {
		// deleted between read and write
		return zero, s.notFound()
	}

	s.publish(ctx, ActionUpdated, id, updated)
	return updated, nil
}

func (s *Service[R, C, U]) Delete(ctx context.Context, id int64) (Deleted, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return Deleted{}, s.storeErr("delete", err)
	}
	if !deleted {
		return Deleted{}, s.notFound()
	}

	s.publish(ctx, ActionDeleted, id, nil)
	return Deleted{
		ID:      id,
		Message: fmt.Sprintf("%s %d deleted successfully", s.schema.Name, id),
	}, nil
}

func (s *Service[R, C, U]) notFound() error {
	return domain.ErrNotFound(s.schema.Name + " not found")
}

func (s *Service[R, C, U]) storeErr(op string, err error) error {
	op = strings.ToLower(s.schema.Name) + " " + op
	zlog.Error().Err(err).Str("op", op).Msg("store operation failed")
	return domain.ErrStore(op, err)
}
