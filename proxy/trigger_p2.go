package proxy

import (
	dispCtx "github.com/sofmon/dispatch/ctx"
)

func NewTrigger2[p1T, p2T any](fn func(ctx dispCtx.Context, p1 p1T, p2 p2T) error) Trigger2[p1T, p2T] {
	return Trigger2[p1T, p2T]{fn: fn}
}

// Trigger2 is a contract method with two arguments and no result.
type Trigger2[p1T, p2T any] struct {
	key    string
	caller *caller
	fn     func(ctx dispCtx.Context, p1 p1T, p2 p2T) error
}

func (x *Trigger2[p1T, p2T]) bind(key string, c *caller) {
	x.key = key
	x.caller = c
}

func (x *Trigger2[p1T, p2T]) Call(ctx dispCtx.Context, p1 p1T, p2 p2T) error {
	if x.fn != nil {
		return x.fn(ctx, p1, p2)
	}
	return x.caller.invoke(ctx, x.key, []any{p1, p2}, nil)
}
