package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestRootArgs(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{nil, false},
		{[]string{"random"}, false},
		{[]string{"r"}, false},
		{[]string{"blue"}, true},
		{[]string{"random", "r"}, true},
	}

	for _, tc := range tests {
		err := rootCmd.Args(rootCmd, tc.args)
		if tc.wantErr {
			assert.Error(t, err, "%v", tc.args)
		} else {
			assert.NoError(t, err, "%v", tc.args)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, string(config.DefaultYAML()), out.String())
}

func TestApplyFlags(t *testing.T) {
	require.NoError(t, rootCmd.ParseFlags([]string{"--backend", "tcell", "--width", "10", "--ghost=false", "--log-level", "debug"}))

	cfg := config.DefaultTetrisConfig()
	applyFlags(rootCmd, &cfg, nil)

	assert.Equal(t, config.BackendTcell, cfg.Display.Backend)
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 30, cfg.Board.Height, "unset flags keep config values")
	assert.False(t, cfg.Display.Ghost)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Display.RandomColors)

	applyFlags(rootCmd, &cfg, []string{"random"})
	assert.True(t, cfg.Display.RandomColors)
}

func TestNewLogger(t *testing.T) {
	logger, closeLog, err := newLogger(config.LogConfig{})
	require.NoError(t, err)
	logger.Info("discarded")
	closeLog()

	_, _, err = newLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "tetris.log")
	logger, closeLog, err = newLogger(config.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("spawn", "piece", "T")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tetris")
	assert.Contains(t, string(data), "spawn")
	assert.Contains(t, string(data), "piece=T")
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, tetris.Snapshot{Score: 1240, Lines: 12, Level: 1})
	assert.Equal(t, "Game over!\nScore: 1240\nLines: 12\nLevel: 1\n", out.String())
}

func TestBackendsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"backends"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), config.BackendBubbleTea)
	assert.Contains(t, out.String(), config.BackendTcell)
}
