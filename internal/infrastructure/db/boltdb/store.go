package boltdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

const (
	bucketTodos = "todos"
	bucketUsers = "users"
)

// DB is a single-file data store. Records are JSON encoded and keyed by
// big-endian ids from the bucket sequence, so cursor order is insertion order
// and ids are never reused.
type DB struct {
	db *bolt.DB

	todos *Table[domain.Todo]
	users *Table[domain.User]
}

func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt open %s: %w", path, err)
	}

	d := &DB{
		db: db,
		todos: &Table[domain.Todo]{
			db:     db,
			bucket: []byte(bucketTodos),
			id:     func(t *domain.Todo) *int64 { return &t.ID },
		},
		users: &Table[domain.User]{
			db:     db,
			bucket: []byte(bucketUsers),
			id:     func(u *domain.User) *int64 { return &u.ID },
			unique: map[string]func(*domain.User) string{
				"email": func(u *domain.User) string { return u.Email },
			},
		},
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, t := range []interface{ ensure(*bolt.Tx) error }{d.todos, d.users} {
			if err := t.ensure(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the file lock.
func (d *DB) Close() error { return d.db.Close() }

func (d *DB) Todos() *Table[domain.Todo] { return d.todos }
func (d *DB) Users() *Table[domain.User] { return d.users }

type Table[R any] struct {
	db     *bolt.DB
	bucket []byte
	id     func(*R) *int64
	// unique maps a field name to the value it constrains; each gets an
	// index bucket "<bucket>.<field>" holding value -> id.
	unique map[string]func(*R) string
}

func (t *Table[R]) indexBucket(field string) []byte {
	return []byte(string(t.bucket) + "." + field)
}

func (t *Table[R]) ensure(tx *bolt.Tx) error {
	if _, err := tx.CreateBucketIfNotExists(t.bucket); err != nil {
		return err
	}
	for field := range t.unique {
		if _, err := tx.CreateBucketIfNotExists(t.indexBucket(field)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table[R]) List(ctx context.Context, offset, limit int) ([]R, error) {
	out := make([]R, 0)
	err := t.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(t.bucket).Cursor()
		skipped := 0
		for k, v := c.First(); k != nil && len(out) < limit; k, v = c.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			var rec R
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode %s/%d: %w", t.bucket, btoi(k), err)
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Table[R]) Get(ctx context.Context, id int64) (R, bool, error) {
	var (
		rec   R
		found bool
	)
	err := t.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(t.bucket).Get(itob(id))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &rec)
	})
	return rec, found, err
}

func (t *Table[R]) Insert(ctx context.Context, rec R) (R, error) {
	err := t.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(t.bucket)

		for field, value := range t.unique {
			v := value(&rec)
			if tx.Bucket(t.indexBucket(field)).Get(indexKey(v)) != nil {
				return &domain.DuplicateError{Field: field, Value: v}
			}
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		*t.id(&rec) = int64(seq)
		key := itob(int64(seq))

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := b.Put(key, data); err != nil {
			return err
		}
		for field, value := range t.unique {
			if err := putIndex(tx.Bucket(t.indexBucket(field)), value(&rec), key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return rec, nil
}

func (t *Table[R]) Update(ctx context.Context, rec R) (R, bool, error) {
	var found bool
	err := t.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(t.bucket)
		key := itob(*t.id(&rec))

		raw := b.Get(key)
		if raw == nil {
			return nil
		}
		found = true

		var prev R
		if err := json.Unmarshal(raw, &prev); err != nil {
			return err
		}

		for field, value := range t.unique {
			idx := tx.Bucket(t.indexBucket(field))
			oldV, newV := value(&prev), value(&rec)
			if oldV == newV {
				continue
			}
			if owner := idx.Get(indexKey(newV)); owner != nil && !bytes.Equal(owner, key) {
				return &domain.DuplicateError{Field: field, Value: newV}
			}
			if err := deleteIndex(idx, oldV); err != nil {
				return err
			}
			if err := putIndex(idx, newV, key); err != nil {
				return err
			}
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
	if err != nil || !found {
		var zero R
		return zero, found, err
	}
	return rec, true, nil
}

func (t *Table[R]) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := t.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(t.bucket)
		key := itob(id)

		raw := b.Get(key)
		if raw == nil {
			return nil
		}
		var prev R
		if err := json.Unmarshal(raw, &prev); err != nil {
			return err
		}
		for field, value := range t.unique {
			if err := deleteIndex(tx.Bucket(t.indexBucket(field)), value(&prev)); err != nil {
				return err
			}
		}
		deleted = true
		return b.Delete(key)
	})
	return deleted, err
}

func (t *Table[R]) Exists(ctx context.Context, field, value string) (bool, error) {
	if _, ok := t.unique[field]; !ok {
		return false, fmt.Errorf("%s: no unique index on %q", t.bucket, field)
	}
	var exists bool
	err := t.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(t.indexBucket(field)).Get(indexKey(value)) != nil
		return nil
	})
	return exists, err
}

// indexKey prefixes value because bolt rejects empty keys and "" is a value
// like any other.
func indexKey(value string) []byte {
	return []byte("v:" + value)
}

func putIndex(b *bolt.Bucket, value string, key []byte) error {
	return b.Put(indexKey(value), key)
}

func deleteIndex(b *bolt.Bucket, value string) error {
	return b.Delete(indexKey(value))
}

func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func btoi(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}
