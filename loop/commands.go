package loop

import "errors"

// ErrStopped is reported when a system stops the loop without a more specific error.
var ErrStopped = errors.New("loop stopped")

// Commands buffers work that must run after every system has executed this frame,
// such as presenting a drawn frame or stopping the loop.
type Commands struct {
	defers []func()
	stop   error
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run at the end of the frame, in queue order.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop asks the loop to end after this frame. The first error wins; a nil error
// is recorded as ErrStopped.
func (c *Commands) Stop(err error) {
	if c.stop != nil {
		return
	}
	if err == nil {
		err = ErrStopped
	}
	c.stop = err
}

// Flush runs the deferred functions, resets the buffer and returns the stop error, if any.
func (c *Commands) Flush() error {
	for _, fn := range c.defers {
		fn()
	}
	err := c.stop

	c.defers = c.defers[:0]
	c.stop = nil
	return err
}
