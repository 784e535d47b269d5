package intl

import "strings"

// Chunk is the host engine's output sink for one render pass. Writes append
// to the buffered output; the first recorded error is sticky and suppresses
// all further writes, mirroring the host's render-abort behavior.
type Chunk struct {
	buf strings.Builder
	err error
}

// NewChunk returns an empty output sink.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Write appends already-escaped text to the output unless an error was
// recorded. It returns the chunk per the host helper convention.
func (c *Chunk) Write(s string) *Chunk {
	if c == nil || c.err != nil {
		return c
	}
	c.buf.WriteString(s)
	return c
}

// SetError records a fatal render error. The first error wins.
func (c *Chunk) SetError(err error) *Chunk {
	if c == nil {
		return c
	}
	if c.err == nil {
		c.err = err
	}
	return c
}

// Err returns the recorded render error, if any.
func (c *Chunk) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}

// String returns the output accumulated so far.
func (c *Chunk) String() string {
	if c == nil {
		return ""
	}
	return c.buf.String()
}

// Body renders nested block content against a context. Helpers receive a nil
// Body when the call carries no block.
type Body func(*Chunk, *Context) *Chunk

// Helper is the host plugin signature: each helper receives the output sink,
// the context chain, the nested body, and the call parameters, and returns
// the sink.
type Helper func(*Chunk, *Context, Body, Params) *Chunk

// HelperRegistry is the host's helper table.
type HelperRegistry interface {
	RegisterHelper(name string, helper Helper)
}
