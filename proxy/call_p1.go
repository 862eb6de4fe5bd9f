package proxy

import (
	dispCtx "github.com/sofmon/dispatch/ctx"
)

func NewCall1[outT, p1T any](fn func(ctx dispCtx.Context, p1 p1T) (outT, error)) Call1[outT, p1T] {
	return Call1[outT, p1T]{fn: fn}
}

// Call1 is a contract method with one argument and a result. The argument
// may be a primitive covered by a declared parameter or a structured value
// whose fields are flattened at call time.
type Call1[outT, p1T any] struct {
	key    string
	caller *caller
	fn     func(ctx dispCtx.Context, p1 p1T) (outT, error)
}

func (x *Call1[outT, p1T]) bind(key string, c *caller) {
	x.key = key
	x.caller = c
}

func (x *Call1[outT, p1T]) Call(ctx dispCtx.Context, p1 p1T) (out outT, err error) {
	if x.fn != nil {
		return x.fn(ctx, p1)
	}
	err = x.caller.invoke(ctx, x.key, []any{p1}, &out)
	return
}
