package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	cmds := []Command{CmdMoveLeft, CmdMoveLeft, CmdRotate, CmdMoveRight, CmdDropDown, CmdMoveDown}
	for _, c := range cmds {
		require.True(t, q.Push(c))
	}

	for i, want := range cmds {
		got, ok := q.Next(time.Second)
		require.True(t, ok, "command %d", i)
		assert.Equal(t, want, got, "command %d", i)
	}
}

func TestQueueTimeout(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	start := time.Now()
	cmd, ok := q.Next(20 * time.Millisecond)
	assert.False(t, ok)
	assert.Equal(t, CmdNone, cmd)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestQueueClose(t *testing.T) {
	q := NewQueue()
	require.True(t, q.Push(CmdRotate))
	q.Close()
	q.Close()

	assert.False(t, q.Push(CmdMoveLeft), "push after close is refused")

	cmd, ok := q.Next(time.Second)
	require.True(t, ok)
	assert.Equal(t, CmdRotate, cmd, "queued commands survive close")

	cmd, ok = q.Next(time.Second)
	require.True(t, ok)
	assert.Equal(t, CmdExit, cmd, "drained closed queue reports exit")
}

func TestQueueConcurrentProducer(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	const n = 1000
	seq := []Command{CmdMoveLeft, CmdMoveRight, CmdRotate, CmdMoveDown}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(seq[i%len(seq)])
		}
	}()

	for i := 0; i < n; i++ {
		cmd, ok := q.Next(time.Second)
		require.True(t, ok, "command %d lost", i)
		assert.Equal(t, seq[i%len(seq)], cmd)
	}
	wg.Wait()
	assert.Equal(t, 0, q.Len())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "MoveLeft", CmdMoveLeft.String())
	assert.Equal(t, "DropDown", CmdDropDown.String())
	assert.Equal(t, "Exit", CmdExit.String())
	assert.Equal(t, "Unknown", Command(99).String())
}
