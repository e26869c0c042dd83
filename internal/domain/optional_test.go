package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type patch struct {
		Title     Optional[string] `json:"title"`
		Completed Optional[bool]   `json:"completed"`
	}

	t.Run("absent_field_stays_unset", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Title.Set)
		assert.False(t, p.Completed.Set)
	})

	t.Run("explicit_null_is_set_and_null", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{"title":null}`), &p))
		assert.True(t, p.Title.Set)
		assert.True(t, p.Title.Null)
		_, ok := p.Title.Get()
		assert.False(t, ok)
	})

	t.Run("value_is_set", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{"completed":false}`), &p))
		v, ok := p.Completed.Get()
		assert.True(t, ok)
		assert.False(t, v)
		assert.False(t, p.Title.Set)
	})

	t.Run("wrong_type_is_rejected", func(t *testing.T) {
		var p patch
		assert.Error(t, json.Unmarshal([]byte(`{"completed":"yes"}`), &p))
	})
}

func TestOptional_OrElse(t *testing.T) {
	assert.True(t, Optional[bool]{}.OrElse(true))
	assert.False(t, Some(false).OrElse(true))
	assert.Equal(t, "x", Null[string]().OrElse("x"))
}

func TestOptional_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Some("a"))
	require.NoError(t, err)
	assert.JSONEq(t, `"a"`, string(b))

	b, err = json.Marshal(Optional[int]{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
