package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("applies_defaults", func(t *testing.T) {
		u, err := NewUser(UserCreate{Name: "Ann", Email: "ann@x.com"})
		require.NoError(t, err)
		assert.Equal(t, User{Name: "Ann", Email: "ann@x.com", IsActive: true, Role: RoleUser}, u)
	})

	t.Run("keeps_supplied_optionals", func(t *testing.T) {
		u, err := NewUser(UserCreate{Name: "Bo", Email: "bo@x.com", IsActive: Some(false), Role: Some(RoleAdmin)})
		require.NoError(t, err)
		assert.False(t, u.IsActive)
		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("fail_on_unknown_role", func(t *testing.T) {
		_, err := NewUser(UserCreate{Name: "Bo", Email: "bo@x.com", Role: Some(Role("root"))})
		assert.Equal(t, CodeValidation, CodeOf(err))
	})

	t.Run("fail_on_null_is_active", func(t *testing.T) {
		_, err := NewUser(UserCreate{Name: "Bo", Email: "bo@x.com", IsActive: Null[bool]()})
		assert.Equal(t, CodeValidation, CodeOf(err))
	})
}

func TestUser_ApplyUpdate(t *testing.T) {
	base := User{ID: 7, Name: "Ann", Email: "ann@x.com", IsActive: true, Role: RoleUser}

	t.Run("empty_update_is_identity", func(t *testing.T) {
		got, err := base.ApplyUpdate(UserUpdate{})
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("changes_only_role", func(t *testing.T) {
		got, err := base.ApplyUpdate(UserUpdate{Role: Some(RoleGuest)})
		require.NoError(t, err)
		want := base
		want.Role = RoleGuest
		assert.Equal(t, want, got)
	})

	t.Run("fail_on_null_email", func(t *testing.T) {
		_, err := base.ApplyUpdate(UserUpdate{Email: Null[string]()})
		assert.Equal(t, CodeValidation, CodeOf(err))
	})

	t.Run("fail_on_invalid_role", func(t *testing.T) {
		_, err := base.ApplyUpdate(UserUpdate{Role: Some(Role("x"))})
		assert.Equal(t, CodeValidation, CodeOf(err))
	})
}

func TestUser_JSONShape(t *testing.T) {
	b, err := json.Marshal(User{ID: 3, Name: "Ann", Email: "ann@x.com", IsActive: true, Role: RoleUser})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ann","email":"ann@x.com","is_active":true,"role":"user","id":3}`, string(b))
}
