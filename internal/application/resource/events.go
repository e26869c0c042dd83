package resource

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent is the payload published after every committed mutation.
type ChangeEvent struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Record     any       `json:"record,omitempty"`
}

func RoutingKey(prefix, action string) string { return prefix + "." + action }

// publish is best effort: the mutation is already committed, so a broker
// failure is logged and swallowed.
func (s *Service[R, C, U]) publish(ctx context.Context, action string, id int64, record any) {
	if s.pub == nil {
		return
	}
	key := RoutingKey(s.schema.Routing, action)
	ev := ChangeEvent{
		Resource:   s.schema.Routing,
		Action:     action,
		ID:         id,
		OccurredAt: s.clock.Now().UTC(),
		Record:     record,
	}
	if err := s.pub.PublishEvent(ctx, key, ev); err != nil {
		zlog.Warn().Err(err).Str("routing_key", key).Int64("id", id).Msg("change event publish failed")
	}
}
