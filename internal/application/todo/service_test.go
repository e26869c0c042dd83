package todo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/infrastructure/db/memory"
)

func newService(t *testing.T) *Service {
	t.Helper()
	db, err := memory.New()
	require.NoError(t, err)
	return New(db.Todos(), nil, nil)
}

func TestTodoService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, domain.TodoCreate{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, domain.Todo{ID: 1, Title: "Buy milk", Completed: false}, created)

	t.Run("get_returns_created_record", func(t *testing.T) {
		got, err := svc.Get(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("update_only_touches_supplied_fields", func(t *testing.T) {
		got, err := svc.Update(ctx, created.ID, domain.TodoUpdate{Completed: domain.Some(true)})
		assert.NoError(t, err)
		assert.Equal(t, domain.Todo{ID: 1, Title: "Buy milk", Completed: true}, got)
	})

	t.Run("empty_update_changes_nothing", func(t *testing.T) {
		before, _ := svc.Get(ctx, created.ID)
		got, err := svc.Update(ctx, created.ID, domain.TodoUpdate{})
		assert.NoError(t, err)
		assert.Equal(t, before, got)
	})

	t.Run("update_missing_is_not_found", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, domain.TodoUpdate{Title: domain.Some("x")})
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
		assert.Equal(t, "Todo not found", err.(*domain.AppError).Message)
	})

	t.Run("delete_then_delete_again", func(t *testing.T) {
		res, err := svc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Todo 1 deleted successfully", res.Message)

		_, err = svc.Delete(ctx, created.ID)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

		_, err = svc.Get(ctx, created.ID)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
	})
}

func TestTodoService_List(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	items, err := svc.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, domain.TodoCreate{Title: title})
		require.NoError(t, err)
	}

	items, err = svc.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Title)
}
