package proxy

import (
	dispCtx "github.com/sofmon/dispatch/ctx"
)

func NewCall3[outT, p1T, p2T, p3T any](fn func(ctx dispCtx.Context, p1 p1T, p2 p2T, p3 p3T) (outT, error)) Call3[outT, p1T, p2T, p3T] {
	return Call3[outT, p1T, p2T, p3T]{fn: fn}
}

// Call3 is a contract method with three arguments and a result.
type Call3[outT, p1T, p2T, p3T any] struct {
	key    string
	caller *caller
	fn     func(ctx dispCtx.Context, p1 p1T, p2 p2T, p3 p3T) (outT, error)
}

func (x *Call3[outT, p1T, p2T, p3T]) bind(key string, c *caller) {
	x.key = key
	x.caller = c
}

func (x *Call3[outT, p1T, p2T, p3T]) Call(ctx dispCtx.Context, p1 p1T, p2 p2T, p3 p3T) (out outT, err error) {
	if x.fn != nil {
		return x.fn(ctx, p1, p2, p3)
	}
	err = x.caller.invoke(ctx, x.key, []any{p1, p2, p3}, &out)
	return
}
