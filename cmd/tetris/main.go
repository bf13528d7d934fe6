// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris [random|r]        - Play (random: random colour per piece)
//	tetris config            - Print the default configuration
//	tetris backends          - List the terminal backends
//
// Flags:
//
//	-r, --random             - Random colour per piece
//	--config <path>          - Custom config YAML
//	--seed <value>           - RNG seed for reproducible games
//	--backend <name>         - bubbletea (default) or tcell
//	--width, --height        - Board size in cells
//	--log-file <path>        - Write diagnostics to a file
//	--log-level <level>      - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-tetris/internal/platform/tcellterm"
	_ "github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagConfig   string
	flagRandom   bool
	flagSeed     int64
	flagBackend  string
	flagWidth    int
	flagHeight   int
	flagGhost    bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris [random|r]",
	Short: "Tetris in your terminal",
	Long: `Tetris in your terminal.

Controls:
  Left/Right  - Move
  Down        - Soft drop
  Up          - Rotate
  Space       - Hard drop
  Esc/Q       - Quit

Pass "random" (or "r", or -r) to give every piece a random colour.

Examples:
  tetris
  tetris random
  tetris --backend tcell --width 10 --height 20
  tetris --seed 42 --log-file /tmp/tetris.log --log-level debug`,
	Args:          cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs:     []string{"random", "r"},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.BoolVarP(&flagRandom, "random", "r", false, "Random colour per piece")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagBackend, "backend", "", "Terminal backend: bubbletea or tcell")
	flags.IntVar(&flagWidth, "width", 0, "Board width in cells")
	flags.IntVar(&flagHeight, "height", 0, "Board height in cells")
	flags.BoolVar(&flagGhost, "ghost", true, "Show where the piece will land")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(backendsCmd)
}
