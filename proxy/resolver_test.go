package proxy

import (
	"errors"
	"sync"
	"testing"

	"github.com/sofmon/dispatch/catalog"
	dispCtx "github.com/sofmon/dispatch/ctx"
)

type healthAPI struct {
	Ping Call0[string] `call:"GET /ping"`
}

func Test_resolver_local_identity(t *testing.T) {

	ctx := dispCtx.New("test")

	impl := &healthAPI{
		Ping: NewCall0(func(ctx dispCtx.Context) (string, error) { return "pong", nil }),
	}

	reg := NewRegistry()
	Register(reg, impl)

	r := NewResolver(catalog.Static{}, WithLocalProvider(reg))

	got, err := GetController[healthAPI](ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != impl {
		t.Error("expected the registered local implementation unchanged")
	}

	out, err := got.Ping.Call(ctx)
	if err != nil || out != "pong" {
		t.Errorf("expected local dispatch, got %q, %v", out, err)
	}
}

func Test_resolver_ambiguous_local(t *testing.T) {

	ctx := dispCtx.New("test")

	reg := NewRegistry()
	Register(reg, &healthAPI{})
	Register(reg, &healthAPI{})

	r := NewResolver(catalog.Static{}, WithLocalProvider(reg))

	_, err := GetController[healthAPI](ctx, r)

	var apiErr Error
	if !errors.As(err, &apiErr) || apiErr.Code != ErrorCodeAmbiguousImplementation {
		t.Errorf("expected ambiguous implementation error, got %v", err)
	}
}

func Test_resolver_unresolved_url(t *testing.T) {

	ctx := dispCtx.New("test")

	r := NewResolver(catalog.Static{})

	_, err := GetController[healthAPI](ctx, r)

	var apiErr Error
	if !errors.As(err, &apiErr) || apiErr.Code != ErrorCodeUnresolvedServiceURL {
		t.Errorf("expected unresolved service URL error, got %v", err)
	}
}

func Test_resolver_proxy_cached(t *testing.T) {

	ctx := dispCtx.New("test")

	r := NewResolver(catalog.Static{"healthAPI": "http://health"})

	first, err := GetController[healthAPI](ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GetController[healthAPI](ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected the same cached proxy instance")
	}
}

func Test_resolver_force_proxy(t *testing.T) {

	ctx := dispCtx.New("test")

	impl := &healthAPI{
		Ping: NewCall0(func(ctx dispCtx.Context) (string, error) { return "pong", nil }),
	}

	reg := NewRegistry()
	Register(reg, impl)

	r := NewResolver(catalog.Static{"healthAPI": "http://health"}, WithLocalProvider(reg))
	r.SetForceProxy(true)

	got, err := GetController[healthAPI](ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == impl {
		t.Error("expected a proxy even though a local implementation exists")
	}

	r.SetForceProxy(false)

	got, err = GetController[healthAPI](ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != impl {
		t.Error("expected the local implementation once forcing is disabled")
	}
}

func Test_resolver_concurrent_first_access(t *testing.T) {

	ctx := dispCtx.New("test")

	r := NewResolver(catalog.Static{"healthAPI": "http://health"})

	var wg sync.WaitGroup
	proxies := make([]*healthAPI, 8)

	for i := range proxies {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := GetController[healthAPI](ctx, r)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			proxies[i] = p
		}(i)
	}
	wg.Wait()

	for _, p := range proxies {
		if p != proxies[0] {
			t.Fatal("expected a single proxy instance across concurrent first access")
		}
	}
}

func Test_resolver_contract_must_be_struct(t *testing.T) {

	ctx := dispCtx.New("test")

	r := NewResolver(catalog.Static{})

	_, err := GetController[string](ctx, r)

	var apiErr Error
	if !errors.As(err, &apiErr) || apiErr.Code != ErrorCodeConfiguration {
		t.Errorf("expected configuration error, got %v", err)
	}
}
