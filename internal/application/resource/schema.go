package resource

// Schema describes how the contract builds, patches and constrains one record type.
type Schema[R, C, U any] struct {
	// Name is used in client-facing messages, e.g. "Todo not found".
	Name string
	// Routing prefixes change-event routing keys, e.g. "todo.created".
	Routing string

	Build func(C) (R, error)
	Apply func(R, U) (R, error)
	ID    func(R) int64

	Unique []Unique[C]
}

// Unique is a uniqueness rule on a create input beyond the id.
type Unique[C any] struct {
	Field   string
	Value   func(C) string
	Message string
}

func (s Schema[R, C, U]) uniqueMessage(field string) string {
	for _, u := range s.Unique {
		if u.Field == field {
			return u.Message
		}
	}
	return field + " already exists"
}
