package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Dispatch(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Capability{
		Name:        "echo",
		Description: "Echoes its arguments",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			return string(args), nil
		},
	})

	t.Run("dispatches registered capability", func(t *testing.T) {
		result, err := registry.Dispatch(context.Background(), "echo", json.RawMessage(`{"a":1}`))

		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, result)
	})

	t.Run("unknown capability returns typed error", func(t *testing.T) {
		_, err := registry.Dispatch(context.Background(), "nope", nil)

		require.Error(t, err)
		var unknown *ErrUnknownCapability
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "nope", unknown.Name)
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("handler errors are passed through", func(t *testing.T) {
		boom := errors.New("boom")
		registry.Register(Capability{
			Name: "failing",
			Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
				return nil, boom
			},
		})

		_, err := registry.Dispatch(context.Background(), "failing", nil)

		assert.ErrorIs(t, err, boom)
	})
}

func TestRegistry_Register_ReplacesExisting(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Capability{
		Name: "echo",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			return "first", nil
		},
	})
	registry.Register(Capability{
		Name: "echo",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			return "second", nil
		},
	})

	result, err := registry.Dispatch(context.Background(), "echo", nil)

	require.NoError(t, err)
	assert.Equal(t, "second", result)
	assert.Len(t, registry.Declarations(), 1)
}

func TestRegistry_Declarations_SortedByName(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"zulu", "alpha", "mike"} {
		registry.Register(Capability{
			Name:        name,
			Description: "d",
			Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
				return nil, nil
			},
		})
	}

	declarations := registry.Declarations()

	require.Len(t, declarations, 3)
	assert.Equal(t, "alpha", declarations[0].Name)
	assert.Equal(t, "mike", declarations[1].Name)
	assert.Equal(t, "zulu", declarations[2].Name)
}
