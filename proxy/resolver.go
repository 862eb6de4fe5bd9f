package proxy

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	dispCtx "github.com/sofmon/dispatch/ctx"
)

// URLResolver decides the base URL of the service implementing a contract,
// identified by its canonical name. An empty URL with a nil error means the
// contract is unknown to the resolver.
type URLResolver interface {
	Resolve(contract string) (string, error)
}

// Resolver hands out controllers: the single registered local implementation
// of a contract when one exists, otherwise a lazily constructed remote
// dispatch proxy. Proxies are cached by canonical contract name for the
// lifetime of the resolver and never evicted.
type Resolver struct {
	urls       URLResolver
	headers    HeaderResolver
	local      LocalProvider
	httpClient *http.Client
	validate   *validator.Validate

	mu         sync.Mutex
	forceProxy bool
	proxies    map[string]any
}

type ResolverOption func(*Resolver)

// WithHeaderResolver sets the collaborator supplying request headers for
// remote calls.
func WithHeaderResolver(headers HeaderResolver) ResolverOption {
	return func(r *Resolver) { r.headers = headers }
}

// WithLocalProvider replaces the default registry as the source of local
// implementations.
func WithLocalProvider(local LocalProvider) ResolverOption {
	return func(r *Resolver) { r.local = local }
}

// WithHTTPClient sets the transport for remote calls; timeouts, TLS and
// pooling all belong to this client.
func WithHTTPClient(httpClient *http.Client) ResolverOption {
	return func(r *Resolver) { r.httpClient = httpClient }
}

// WithValidation enables struct-tag validation of structured arguments
// before they are marshalled.
func WithValidation() ResolverOption {
	return func(r *Resolver) { r.validate = validator.New() }
}

func NewResolver(urls URLResolver, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		urls:       urls,
		local:      NewRegistry(),
		httpClient: http.DefaultClient,
		proxies:    map[string]any{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetForceProxy makes the resolver create remote dispatch proxies even when
// a local implementation exists. Useful for exercising the remote path in
// isolation.
func (r *Resolver) SetForceProxy(force bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forceProxy = force
}

func (r *Resolver) ForceProxy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.forceProxy
}

// GetController returns the controller for contract T: the registered local
// implementation unchanged when exactly one exists, or a cached remote
// dispatch proxy. More than one local implementation is never guessed
// between.
func GetController[T any](ctx dispCtx.Context, r *Resolver) (*T, error) {

	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, NewError(ErrorCodeConfiguration,
			"contract must be a named struct type, got "+t.String())
	}
	contract := canonicalName(t)

	if !r.ForceProxy() {
		impls := r.local.Implementations(contract)
		if len(impls) > 1 {
			return nil, NewError(ErrorCodeAmbiguousImplementation,
				fmt.Sprintf("expecting a single local implementation of %s, found %d", contract, len(impls)))
		}
		if len(impls) == 1 {
			impl, ok := impls[0].(*T)
			if !ok {
				return nil, NewError(ErrorCodeConfiguration,
					fmt.Sprintf("local implementation of %s has unexpected type %T", contract, impls[0]))
			}
			return impl, nil
		}
	}

	return getOrCreateProxy[T](ctx, r, contract)
}

// getOrCreateProxy serializes first access per contract so at most one proxy
// is constructed and published; later calls return the cached instance.
func getOrCreateProxy[T any](ctx dispCtx.Context, r *Resolver, contract string) (*T, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.proxies[contract]; ok {
		return cached.(*T), nil
	}

	baseURL, err := r.urls.Resolve(contract)
	if err != nil {
		return nil, NewError(ErrorCodeUnresolvedServiceURL,
			"cannot resolve URL for "+contract+": "+err.Error())
	}
	if baseURL == "" {
		return nil, NewError(ErrorCodeUnresolvedServiceURL,
			"cannot resolve URL for "+contract)
	}

	svc := new(T)
	bindContract(ctx, svc, strings.TrimSuffix(baseURL, "/"), r.httpClient, r.headers, r.validate)
	r.proxies[contract] = svc

	ctx.Logger().Debug("remote dispatch proxy created", "contract", contract, "url", baseURL)

	return svc, nil
}
