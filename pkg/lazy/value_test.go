package lazy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Unset(t *testing.T) {
	t.Parallel()

	var v Value[string]
	assert.False(t, v.IsSet())

	res, err := v.Get()
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestValue_EvaluatesOnEveryGet(t *testing.T) {
	t.Parallel()

	calls := 0
	v := From(func() int {
		calls++
		return calls
	})
	require.True(t, v.IsSet())
	assert.Equal(t, 1, v.MustGet())
	assert.Equal(t, 2, v.MustGet())
}

func TestValue_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	v := FromE(func() (string, error) { return "", boom })

	_, err := v.Get()
	require.ErrorIs(t, err, boom)
	assert.Panics(t, func() { v.MustGet() })
}

func TestOf(t *testing.T) {
	t.Parallel()

	v := Of("/users")
	assert.True(t, v.IsSet())
	assert.Equal(t, "/users", v.MustGet())
	assert.False(t, From[string](nil).IsSet())
}
