package proxy

import (
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"

	dispCtx "github.com/sofmon/dispatch/ctx"
)

// Prefix marks a contract-level path prefix, declared as a blank field:
//
//	type UserAPI struct {
//	    _      proxy.Prefix               `call:"/api"`
//	    Search proxy.Call1[[]User, string] `call:"GET /users/search?q!"`
//	}
type Prefix struct{}

const callTag = "call"

var prefixType = reflect.TypeOf(Prefix{})

func canonicalName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// bindContract inspects a contract struct once, building one descriptor per
// call/trigger field and attaching them all to a shared caller. Malformed
// tags degrade to defaults; binding never fails.
func bindContract(ctx dispCtx.Context, svc any, baseURL string, httpClient *http.Client, headers HeaderResolver, validate *validator.Validate) {

	v := reflect.ValueOf(svc).Elem()
	t := v.Type()

	c := &caller{
		contract:   canonicalName(t),
		table:      map[string]*descriptor{},
		httpClient: httpClient,
		headers:    headers,
		validate:   validate,
	}

	prefix := contractPrefix(ctx, t)

	for _, f := range reflect.VisibleFields(t) {

		if !f.IsExported() || f.Type == prefixType {
			continue
		}

		ep, ok := v.FieldByIndex(f.Index).Addr().Interface().(endpoint)
		if !ok {
			continue
		}

		key := t.Name() + "." + f.Name

		tag, ok := f.Tag.Lookup(callTag)
		if !ok {
			ctx.Logger().Warn("no call tag found for method, defaulting to GET on the contract prefix",
				"method", key)
		}

		desc := newDescriptor(key, baseURL, prefix, tag)
		c.table[key] = &desc
		ep.bind(key, c)

		ctx.Logger().Debug("invocation metadata registered",
			"method", key, "verb", desc.verb, "path", desc.path, "parameters", len(desc.params))
	}
}

// contractPrefix reads the path prefix from the contract's Prefix marker
// fields. More than one marker is an accepted ambiguity: warn and use the
// first.
func contractPrefix(ctx dispCtx.Context, t reflect.Type) string {

	// plain field enumeration; blank marker fields share the name "_" and
	// would hide one another under reflect.VisibleFields
	var prefixes []string
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.Type == prefixType {
			prefixes = append(prefixes, f.Tag.Get(callTag))
		}
	}

	if len(prefixes) == 0 {
		return ""
	}
	if len(prefixes) > 1 {
		ctx.Logger().Warn("more than one path prefix declared, using the first",
			"contract", canonicalName(t))
	}
	return prefixes[0]
}
