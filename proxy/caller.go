package proxy

import (
	"bytes"
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"

	dispCtx "github.com/sofmon/dispatch/ctx"
)

// HeaderResolver supplies the request headers for remote calls to a
// contract, identified by its canonical name. When no resolver is
// configured, calls default to requesting JSON content and forward the
// inbound request's Authorization header, if the context carries one.
type HeaderResolver interface {
	HeadersFor(contract string) (http.Header, error)
}

// caller holds the descriptor table of one contract and performs the HTTP
// exchange for its methods. The table is built once at proxy construction
// and read-only afterwards, so it is shared across goroutines without
// locking.
type caller struct {
	contract   string
	table      map[string]*descriptor
	httpClient *http.Client
	headers    HeaderResolver
	validate   *validator.Validate
}

func (c *caller) invoke(ctx dispCtx.Context, key string, args []any, out any) error {

	if c == nil {
		return NewError(ErrorCodeNotInitialized,
			"contract not initialized; register a local implementation or obtain it via GetController")
	}

	desc, ok := c.table[key]
	if !ok {
		return NewError(ErrorCodeMissingInvocationMetadata,
			"cannot find invocation metadata for the method '"+key+"'")
	}

	ctx.Logger().Debug("dispatching remote call",
		"method", key, "verb", desc.verb, "url", desc.url())

	if c.validate != nil {
		if err := c.validateArgs(args); err != nil {
			return err
		}
	}

	vals, err := marshalParams(desc, args)
	if err != nil {
		return err
	}

	var req *http.Request

	if desc.verb == http.MethodGet {
		q, err := vals.query()
		if err != nil {
			return err
		}
		u := desc.url()
		if enc := q.Encode(); enc != "" {
			u += "?" + enc
		}
		req, err = http.NewRequestWithContext(ctx, desc.verb, u, nil)
		if err != nil {
			return NewError(ErrorCodeMarshalling, "cannot build request for URL "+u+": "+err.Error())
		}
	} else {
		payload, err := json.Marshal(body(vals, args))
		if err != nil {
			return NewError(ErrorCodeMarshalling, "cannot serialize request body to JSON: "+err.Error())
		}
		req, err = http.NewRequestWithContext(ctx, desc.verb, desc.url(), bytes.NewReader(payload))
		if err != nil {
			return NewError(ErrorCodeMarshalling, "cannot build request for URL "+desc.url()+": "+err.Error())
		}
		req.Header.Set("Content-Type", "application/json")
	}

	if err = c.setHeaders(ctx, req); err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		// never leak the raw transport error type across the boundary
		return &RemoteError{URL: desc.url(), cause: err}
	}

	return unmarshalResult(desc, res, out)
}

func (c *caller) setHeaders(ctx dispCtx.Context, req *http.Request) error {

	if wf := ctx.Workflow(); wf != "" {
		req.Header.Set(dispCtx.HttpHeaderWorkflow, string(wf))
	}

	if c.headers != nil {
		headers, err := c.headers.HeadersFor(c.contract)
		if err != nil {
			return NewError(ErrorCodeConfiguration,
				"cannot resolve headers for "+c.contract+": "+err.Error())
		}
		for name, values := range headers {
			for _, v := range values {
				req.Header.Add(name, v)
			}
		}
		return nil
	}

	// default accept header when no resolver is configured
	req.Header.Set("Accept", "application/json")

	if inReq := ctx.Request(); inReq != nil {
		if authHeader := inReq.Header.Get("Authorization"); authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
	}

	return nil
}

func (c *caller) validateArgs(args []any) error {
	for _, arg := range args {
		if isNil(arg) || isPrimitive(arg) {
			continue
		}
		v := reflect.ValueOf(arg)
		for v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			continue
		}
		if err := c.validate.Struct(v.Interface()); err != nil {
			return NewError(ErrorCodeMarshalling, "argument validation failed: "+err.Error())
		}
	}
	return nil
}
