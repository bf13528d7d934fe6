package tcellterm

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register(config.BackendTcell, "Direct cell painting with tcell", Run)
}
