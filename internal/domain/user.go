package domain

// User is a persisted user account. Field order follows the wire format.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	Role     Role   `json:"role"`
	ID       int64  `json:"id"`
}

type UserCreate struct {
	Name     string
	Email    string
	IsActive Optional[bool]
	Role     Optional[Role]
}

type UserUpdate struct {
	Name     Optional[string]
	Email    Optional[string]
	IsActive Optional[bool]
	Role     Optional[Role]
}

func NewUser(in UserCreate) (User, error) {
	if err := requireNonNull("is_active", in.IsActive); err != nil {
		return User{}, err
	}
	if err := requireNonNull("role", in.Role); err != nil {
		return User{}, err
	}
	role := in.Role.OrElse(RoleUser)
	if !role.Valid() {
		return User{}, ErrValidationMeta("invalid field", map[string]string{
			"role": "must be one of: admin, user, guest",
		})
	}
	return User{
		Name:     in.Name,
		Email:    in.Email,
		IsActive: in.IsActive.OrElse(true),
		Role:     role,
	}, nil
}

func (u User) ApplyUpdate(in UserUpdate) (User, error) {
	for _, err := range []error{
		requireNonNull("name", in.Name),
		requireNonNull("email", in.Email),
		requireNonNull("is_active", in.IsActive),
		requireNonNull("role", in.Role),
	} {
		if err != nil {
			return User{}, err
		}
	}

	out := u
	if v, ok := in.Name.Get(); ok {
		out.Name = v
	}
	if v, ok := in.Email.Get(); ok {
		out.Email = v
	}
	if v, ok := in.IsActive.Get(); ok {
		out.IsActive = v
	}
	if v, ok := in.Role.Get(); ok {
		if !v.Valid() {
			return User{}, ErrValidationMeta("invalid field", map[string]string{
				"role": "must be one of: admin, user, guest",
			})
		}
		out.Role = v
	}
	return out, nil
}
