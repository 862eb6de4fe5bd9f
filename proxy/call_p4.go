package proxy

import (
	dispCtx "github.com/sofmon/dispatch/ctx"
)

func NewCall4[outT, p1T, p2T, p3T, p4T any](fn func(ctx dispCtx.Context, p1 p1T, p2 p2T, p3 p3T, p4 p4T) (outT, error)) Call4[outT, p1T, p2T, p3T, p4T] {
	return Call4[outT, p1T, p2T, p3T, p4T]{fn: fn}
}

// Call4 is a contract method with four arguments and a result.
type Call4[outT, p1T, p2T, p3T, p4T any] struct {
	key    string
	caller *caller
	fn     func(ctx dispCtx.Context, p1 p1T, p2 p2T, p3 p3T, p4 p4T) (outT, error)
}

func (x *Call4[outT, p1T, p2T, p3T, p4T]) bind(key string, c *caller) {
	x.key = key
	x.caller = c
}

func (x *Call4[outT, p1T, p2T, p3T, p4T]) Call(ctx dispCtx.Context, p1 p1T, p2 p2T, p3 p3T, p4 p4T) (out outT, err error) {
	if x.fn != nil {
		return x.fn(ctx, p1, p2, p3, p4)
	}
	err = x.caller.invoke(ctx, x.key, []any{p1, p2, p3, p4}, &out)
	return
}
