package domain

import "encoding/json"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrValidationMeta("invalid field", map[string]string{
			"role": "must be one of: admin, user, guest",
		})
	}
	return r, nil
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrValidationMeta("invalid field", map[string]string{
			"role": "must be a string",
		})
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
