package loop_test

import (
	"errors"
	"testing"
	"time"

	"github.com/plus3/tetris/loop"
	"github.com/stretchr/testify/assert"
)

type deferSystem struct {
	name string
	log  *[]string
}

func (s *deferSystem) Execute(frame *loop.Frame) {
	*s.log = append(*s.log, s.name)
	frame.Commands.Defer(func() {
		*s.log = append(*s.log, "flush "+s.name)
	})
}

func TestCommandsDeferRunsAfterSystems(t *testing.T) {
	scheduler := loop.NewScheduler(newEngine())
	var log []string
	scheduler.Register(&deferSystem{"a", &log})
	scheduler.Register(&deferSystem{"b", &log})

	_, err := scheduler.Once(time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "flush a", "flush b"}, log)
}

func TestCommandsStop(t *testing.T) {
	t.Run("first error wins", func(t *testing.T) {
		var c loop.Commands
		first := errors.New("first")
		c.Stop(first)
		c.Stop(errors.New("second"))

		assert.ErrorIs(t, c.Flush(), first)
	})

	t.Run("nil error becomes ErrStopped", func(t *testing.T) {
		var c loop.Commands
		c.Stop(nil)

		assert.ErrorIs(t, c.Flush(), loop.ErrStopped)
	})

	t.Run("flush resets", func(t *testing.T) {
		var c loop.Commands
		calls := 0
		c.Defer(func() { calls++ })
		c.Stop(nil)

		c.Flush()
		assert.NoError(t, c.Flush())
		assert.Equal(t, 1, calls)
	})
}
