package proxy

import (
	dispCtx "github.com/sofmon/dispatch/ctx"
)

func NewTrigger1[p1T any](fn func(ctx dispCtx.Context, p1 p1T) error) Trigger1[p1T] {
	return Trigger1[p1T]{fn: fn}
}

// Trigger1 is a contract method with one argument and no result.
type Trigger1[p1T any] struct {
	key    string
	caller *caller
	fn     func(ctx dispCtx.Context, p1 p1T) error
}

func (x *Trigger1[p1T]) bind(key string, c *caller) {
	x.key = key
	x.caller = c
}

func (x *Trigger1[p1T]) Call(ctx dispCtx.Context, p1 p1T) error {
	if x.fn != nil {
		return x.fn(ctx, p1)
	}
	return x.caller.invoke(ctx, x.key, []any{p1}, nil)
}
