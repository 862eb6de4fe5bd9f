package ctx

import (
	"context"

	"github.com/google/uuid"
)

type Context struct {
	context.Context
}

type contextKey int

const (
	contextKeyAgent contextKey = iota
	contextKeyEnv
	contextKeyRequest
	contextKeyWorkflow
	contextKeyLogger

	loggerKeyEnv      = "env"
	loggerKeyAgent    = "agent"
	loggerKeyWorkflow = "workflow"
)

type Agent string

func New(agent Agent) (ctx Context) {
	return WrapContext(context.Background(), agent)
}

func WrapContext(parent context.Context, agent Agent) (ctx Context) {

	env := getEnv()                        // determine the environment
	workflow := Workflow(uuid.NewString()) // generate a new workflow ID

	ctx.Context = context.WithValue(parent, contextKeyEnv, env)
	ctx.Context = context.WithValue(ctx.Context, contextKeyAgent, agent)
	ctx.Context = context.WithValue(ctx.Context, contextKeyWorkflow, workflow)

	ctx.Context = context.WithValue(ctx.Context, contextKeyLogger,
		defaultLogger().
			With(
				loggerKeyEnv, env,
				loggerKeyAgent, agent,
				loggerKeyWorkflow, workflow,
			),
	)

	return
}

func (ctx Context) Agent() Agent {
	obj := ctx.Value(contextKeyAgent)
	if obj == nil {
		return ""
	}
	return obj.(Agent)
}
