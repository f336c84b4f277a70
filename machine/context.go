package machine

import (
	"github.com/wippyai/wordvm/stack"
)

// Context is the state of one guest execution. It is not safe for
// concurrent use.
type Context struct {
	stack     *stack.Stack
	subCall   *Context
	jumpPtr   uint32
	returnOff uint32
	returnLen uint32
}

// New creates a context with the default stack geometry.
func New() *Context {
	return &Context{stack: stack.NewDefault()}
}

// NewWithSize creates a context whose stack holds capacityBytes of
// wordBytes-wide words.
func NewWithSize(wordBytes, capacityBytes int) (*Context, error) {
	st, err := stack.New(wordBytes, capacityBytes)
	if err != nil {
		return nil, err
	}
	return &Context{stack: st}, nil
}

// Stack returns the context's stack.
func (c *Context) Stack() *stack.Stack { return c.stack }

// JumpPtr returns the jump pointer.
func (c *Context) JumpPtr() uint32 { return c.jumpPtr }

// SetJumpPtr sets the jump pointer.
func (c *Context) SetJumpPtr(p uint32) { c.jumpPtr = p }

// ReturnOffset returns the offset of the return data.
func (c *Context) ReturnOffset() uint32 { return c.returnOff }

// ReturnLength returns the length of the return data.
func (c *Context) ReturnLength() uint32 { return c.returnLen }

// SetReturn records the location of the return data.
func (c *Context) SetReturn(off, length uint32) {
	c.returnOff = off
	c.returnLen = length
}

// SubContext returns the sub-call context, or nil if none was started.
func (c *Context) SubContext() *Context { return c.subCall }

// InitSubCall creates a fresh sub-call context with the same stack geometry
// and makes it the current child.
func (c *Context) InitSubCall() *Context {
	st, err := stack.New(c.stack.WordWidth(), c.stack.Cap())
	if err != nil {
		// The parent's geometry was already validated.
		panic(err)
	}
	c.subCall = &Context{stack: st}
	return c.subCall
}

// Reset empties the stack, clears the bookkeeping fields and drops any
// sub-call context.
func (c *Context) Reset() {
	c.stack.Reset()
	c.subCall = nil
	c.jumpPtr = 0
	c.returnOff = 0
	c.returnLen = 0
}
