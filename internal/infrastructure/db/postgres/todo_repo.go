package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

type TodoRepo struct {
	db *sql.DB
}

func NewTodoRepo(db *sql.DB) *TodoRepo { return &TodoRepo{db: db} }

func (r *TodoRepo) List(ctx context.Context, offset, limit int) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, listTodosSQL, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Todo, 0)
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TodoRepo) Get(ctx context.Context, id int64) (domain.Todo, bool, error) {
	var t domain.Todo
	err := r.db.QueryRowContext(ctx, getTodoSQL, id).Scan(&t.ID, &t.Title, &t.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, false, nil
	}
	if err != nil {
		return domain.Todo{}, false, err
	}
	return t, true, nil
}

func (r *TodoRepo) Insert(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	if err := r.db.QueryRowContext(ctx, insertTodoSQL, t.Title, t.Completed).Scan(&t.ID); err != nil {
		return domain.Todo{}, mapWriteErr(err)
	}
	return t, nil
}

func (r *TodoRepo) Update(ctx context.Context, t domain.Todo) (domain.Todo, bool, error) {
	res, err := r.db.ExecContext(ctx, updateTodoSQL, t.ID, t.Title, t.Completed)
	if err != nil {
		return domain.Todo{}, false, mapWriteErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Todo{}, false, err
	}
	return t, n > 0, nil
}

func (r *TodoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, deleteTodoSQL, id)
}

func (r *TodoRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	return false, fmt.Errorf("todos: no unique index on %q", field)
}

func deleteByID(ctx context.Context, db *sql.DB, query string, id int64) (bool, error) {
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
