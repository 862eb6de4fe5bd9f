package proxy

import (
	dispCtx "github.com/sofmon/dispatch/ctx"
)

// NewCall0 wraps a local implementation of a method without arguments.
func NewCall0[outT any](fn func(ctx dispCtx.Context) (outT, error)) Call0[outT] {
	return Call0[outT]{fn: fn}
}

// Call0 is a contract method with no arguments and a result.
type Call0[outT any] struct {
	key    string
	caller *caller
	fn     func(ctx dispCtx.Context) (outT, error)
}

func (x *Call0[outT]) bind(key string, c *caller) {
	x.key = key
	x.caller = c
}

func (x *Call0[outT]) Call(ctx dispCtx.Context) (out outT, err error) {
	if x.fn != nil {
		return x.fn(ctx)
	}
	err = x.caller.invoke(ctx, x.key, nil, &out)
	return
}
