package ctx

import (
	"context"
	"net/http"
)

const (
	HttpHeaderWorkflow = "Workflow"
)

// WithRequest marks the context as serving an inbound HTTP request; outgoing
// calls made with the resulting context continue the request's workflow.
func (ctx Context) WithRequest(r *http.Request) (res Context) {

	res = Context{
		context.WithValue(
			ctx.Context,
			contextKeyRequest,
			r,
		),
	}

	if wid := r.Header.Get(HttpHeaderWorkflow); wid != "" {
		res = res.WithWorkflow(Workflow(wid))
	}

	return
}

func (ctx Context) Request() (r *http.Request) {
	obj := ctx.Value(contextKeyRequest)
	if obj == nil {
		return
	}
	return obj.(*http.Request)
}
