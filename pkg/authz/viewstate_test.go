package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewState(t *testing.T) {
	t.Parallel()

	state := NewViewState("tenant:global:user:1", "global")
	state.SetCapability(" Core.Users.List ", true)

	assert.True(t, state.Capability("core.users.list"))
	_, ok := state.CapabilityValue("core.roles.list")
	assert.False(t, ok)

	var nilState *ViewState
	assert.False(t, nilState.Capability("core.users.list"))
	nilState.SetCapability("x", true)
}

func TestViewStateContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Nil(t, ViewStateFromContext(ctx))
	assert.Equal(t, ctx, WithViewState(ctx, nil))

	state := NewViewState("s", "d")
	require.Same(t, state, ViewStateFromContext(WithViewState(ctx, state)))
}
