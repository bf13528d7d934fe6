package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func stubRunner(reason engine.Reason) Runner {
	return func(ctx context.Context, game *tetris.Game, opts engine.Options) (engine.Result, error) {
		return engine.Result{Reason: reason}, nil
	}
}

func TestRegisterAndLookup(t *testing.T) {
	Register("test-zeta", "last", stubRunner(engine.ReasonExit))
	Register("test-alpha", "first", stubRunner(engine.ReasonGameOver))

	assert.True(t, Exists("test-alpha"))
	assert.False(t, Exists("test-missing"))

	run, err := Lookup("test-alpha")
	require.NoError(t, err)
	res, err := run(context.Background(), nil, engine.Options{})
	require.NoError(t, err)
	assert.Equal(t, engine.ReasonGameOver, res.Reason)

	_, err = Lookup("test-missing")
	assert.EqualError(t, err, `registry: unknown backend "test-missing"`)

	var names []string
	for _, b := range List() {
		names = append(names, b.Name)
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "test-zeta")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "once", stubRunner(engine.ReasonExit))
	assert.PanicsWithValue(t, `registry: backend "test-dup" already registered`, func() {
		Register("test-dup", "twice", stubRunner(engine.ReasonExit))
	})
}
