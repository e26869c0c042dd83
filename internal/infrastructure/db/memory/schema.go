package memory

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

const (
	TableTodos = "todos"
	TableUsers = "users"

	indexID    = "id"
	indexEmail = "email"
)

func dbSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			TableTodos: {
				Name: TableTodos,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {Name: indexID, Unique: true, Indexer: &memdb.IntFieldIndex{Field: "ID"}},
					"title": {Name: "title", AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "Title"}},
				},
			},
			TableUsers: {
				Name: TableUsers,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {Name: indexID, Unique: true, Indexer: &memdb.IntFieldIndex{Field: "ID"}},
					"name":  {Name: "name", AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "Name"}},
					indexEmail: {Name: indexEmail, Unique: true, Indexer: &valueIndex{
						field: func(obj any) (string, bool) {
							u, ok := obj.(*domain.User)
							if !ok {
								return "", false
							}
							return u.Email, true
						},
					}},
				},
			},
		},
	}
}

// valueIndex indexes a string field including the empty string, which
// memdb.StringFieldIndex treats as missing.
type valueIndex struct {
	field func(obj any) (string, bool)
}

func (x *valueIndex) FromObject(obj any) (bool, []byte, error) {
	v, ok := x.field(obj)
	if !ok {
		return false, nil, fmt.Errorf("valueIndex: unexpected object %T", obj)
	}
	return true, valueKey(v), nil
}

func (x *valueIndex) FromArgs(args ...any) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("valueIndex: must provide only a single argument")
	}
	v, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("valueIndex: argument must be a string: %#v", args[0])
	}
	return valueKey(v), nil
}

// valueKey prefixes v so "" still yields a non-empty key; the trailing NUL
// matches memdb's own string encoding.
func valueKey(v string) []byte {
	key := make([]byte, 0, len(v)+2)
	key = append(key, 'v')
	key = append(key, v...)
	return append(key, 0)
}
