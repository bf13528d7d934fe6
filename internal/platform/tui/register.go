package tui

import (
	"context"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register(config.BackendBubbleTea, "Bubble Tea program on the alternate screen",
		func(ctx context.Context, game *tetris.Game, opts engine.Options) (engine.Result, error) {
			return Run(ctx, game, opts)
		})
}
