package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (domain.User, error) {
	var u domain.User
	var role string
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &u.IsActive, &role); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	if !u.Role.Valid() {
		return domain.User{}, fmt.Errorf("invalid role %q in db for user %d", role, u.ID)
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersSQL, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepo) Get(ctx context.Context, id int64) (domain.User, bool, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, getUserSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	return u, true, nil
}

func (r *UserRepo) Insert(ctx context.Context, u domain.User) (domain.User, error) {
	err := r.db.QueryRowContext(ctx, insertUserSQL, u.Name, u.Email, u.IsActive, string(u.Role)).Scan(&u.ID)
	if err != nil {
		return domain.User{}, mapWriteErr(err)
	}
	return u, nil
}

func (r *UserRepo) Update(ctx context.Context, u domain.User) (domain.User, bool, error) {
	res, err := r.db.ExecContext(ctx, updateUserSQL, u.ID, u.Name, u.Email, u.IsActive, string(u.Role))
	if err != nil {
		return domain.User{}, false, mapWriteErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, false, err
	}
	return u, n > 0, nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, deleteUserSQL, id)
}

func (r *UserRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	if field != "email" {
		return false, fmt.Errorf("users: no unique index on %q", field)
	}
	var exists bool
	if err := r.db.QueryRowContext(ctx, userEmailExistsSQL, value).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
