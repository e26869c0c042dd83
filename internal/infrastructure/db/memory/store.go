package memory

import (
	"context"
	"fmt"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

// DB is an in-process data store. Write transactions are serialised by memdb,
// which makes the unique checks in Insert/Update atomic with the write.
type DB struct {
	db *memdb.MemDB

	todos *Table[domain.Todo]
	users *Table[domain.User]
}

func New() (*DB, error) {
	db, err := memdb.NewMemDB(dbSchema())
	if err != nil {
		return nil, fmt.Errorf("memdb init: %w", err)
	}
	return &DB{
		db: db,
		todos: &Table[domain.Todo]{
			db:   db,
			name: TableTodos,
			id:   func(t *domain.Todo) *int64 { return &t.ID },
		},
		users: &Table[domain.User]{
			db:   db,
			name: TableUsers,
			id:   func(u *domain.User) *int64 { return &u.ID },
			unique: map[string]func(*domain.User) string{
				indexEmail: func(u *domain.User) string { return u.Email },
			},
		},
	}, nil
}

func (d *DB) Todos() *Table[domain.Todo] { return d.todos }
func (d *DB) Users() *Table[domain.User] { return d.users }

// Table stores records of one type, ordered by id.
type Table[R any] struct {
	db   *memdb.MemDB
	name string
	id   func(*R) *int64
	// unique maps an index name to the value it constrains.
	unique map[string]func(*R) string

	// guarded by memdb's single writer
	seq int64
}

func (t *Table[R]) List(ctx context.Context, offset, limit int) ([]R, error) {
	txn := t.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(t.name, indexID)
	if err != nil {
		return nil, err
	}

	out := make([]R, 0)
	skipped := 0
	for obj := it.Next(); obj != nil && len(out) < limit; obj = it.Next() {
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, *obj.(*R))
	}
	return out, nil
}

func (t *Table[R]) Get(ctx context.Context, id int64) (R, bool, error) {
	var zero R
	txn := t.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(t.name, indexID, id)
	if err != nil {
		return zero, false, err
	}
	if obj == nil {
		return zero, false, nil
	}
	return *obj.(*R), true, nil
}

func (t *Table[R]) Insert(ctx context.Context, rec R) (R, error) {
	var zero R
	txn := t.db.Txn(true)
	defer txn.Abort()

	if err := t.checkUnique(txn, &rec); err != nil {
		return zero, err
	}

	t.seq++
	*t.id(&rec) = t.seq

	row := rec
	if err := txn.Insert(t.name, &row); err != nil {
		return zero, err
	}
	txn.Commit()
	return rec, nil
}

func (t *Table[R]) Update(ctx context.Context, rec R) (R, bool, error) {
	var zero R
	txn := t.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(t.name, indexID, *t.id(&rec))
	if err != nil {
		return zero, false, err
	}
	if existing == nil {
		return zero, false, nil
	}
	if err := t.checkUnique(txn, &rec); err != nil {
		return zero, false, err
	}

	row := rec
	if err := txn.Insert(t.name, &row); err != nil {
		return zero, false, err
	}
	txn.Commit()
	return rec, true, nil
}

func (t *Table[R]) Delete(ctx context.Context, id int64) (bool, error) {
	txn := t.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(t.name, indexID, id)
	if err != nil {
		return false, err
	}
	if obj == nil {
		return false, nil
	}
	if err := txn.Delete(t.name, obj); err != nil {
		return false, err
	}
	txn.Commit()
	return true, nil
}

func (t *Table[R]) Exists(ctx context.Context, field, value string) (bool, error) {
	if _, ok := t.unique[field]; !ok {
		return false, fmt.Errorf("%s: no unique index on %q", t.name, field)
	}
	txn := t.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(t.name, field, value)
	if err != nil {
		return false, err
	}
	return obj != nil, nil
}

// checkUnique rejects rec when another row already holds one of its unique values.
func (t *Table[R]) checkUnique(txn *memdb.Txn, rec *R) error {
	for index, value := range t.unique {
		v := value(rec)
		obj, err := txn.First(t.name, index, v)
		if err != nil {
			return err
		}
		if obj != nil && *t.id(obj.(*R)) != *t.id(rec) {
			return &domain.DuplicateError{Field: index, Value: v}
		}
	}
	return nil
}
