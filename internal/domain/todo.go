package domain

// Todo is a persisted todo item. Field order follows the wire format.
type Todo struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	ID        int64  `json:"id"`
}

type TodoCreate struct {
	Title     string
	Completed Optional[bool]
}

type TodoUpdate struct {
	Title     Optional[string]
	Completed Optional[bool]
}

func NewTodo(in TodoCreate) (Todo, error) {
	if err := requireNonNull("completed", in.Completed); err != nil {
		return Todo{}, err
	}
	return Todo{
		Title:     in.Title,
		Completed: in.Completed.OrElse(false),
	}, nil
}

// ApplyUpdate returns a copy of t with the supplied fields overwritten.
// t itself is left untouched so a rejected patch never leaks partial state.
func (t Todo) ApplyUpdate(u TodoUpdate) (Todo, error) {
	if err := requireNonNull("title", u.Title); err != nil {
		return Todo{}, err
	}
	if err := requireNonNull("completed", u.Completed); err != nil {
		return Todo{}, err
	}

	out := t
	if v, ok := u.Title.Get(); ok {
		out.Title = v
	}
	if v, ok := u.Completed.Get(); ok {
		out.Completed = v
	}
	return out, nil
}
