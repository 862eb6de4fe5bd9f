package proxy

import (
	dispCtx "github.com/sofmon/dispatch/ctx"
)

func NewCall2[outT, p1T, p2T any](fn func(ctx dispCtx.Context, p1 p1T, p2 p2T) (outT, error)) Call2[outT, p1T, p2T] {
	return Call2[outT, p1T, p2T]{fn: fn}
}

// Call2 is a contract method with two arguments and a result.
type Call2[outT, p1T, p2T any] struct {
	key    string
	caller *caller
	fn     func(ctx dispCtx.Context, p1 p1T, p2 p2T) (outT, error)
}

func (x *Call2[outT, p1T, p2T]) bind(key string, c *caller) {
	x.key = key
	x.caller = c
}

func (x *Call2[outT, p1T, p2T]) Call(ctx dispCtx.Context, p1 p1T, p2 p2T) (out outT, err error) {
	if x.fn != nil {
		return x.fn(ctx, p1, p2)
	}
	err = x.caller.invoke(ctx, x.key, []any{p1, p2}, &out)
	return
}
