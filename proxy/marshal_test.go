package proxy

import (
	"errors"
	"reflect"
	"testing"
)

type searchRequest struct {
	Query  string `json:"query"`
	Page   *int   `json:"page,omitempty"`
	ignore string `json:"ignored"`
	Skip   string `json:"-"`
}

func Test_marshal_positional(t *testing.T) {

	desc := descriptor{params: []parameter{{"q", true}, {"page", false}}}

	vals, err := marshalParams(&desc, []any{"alice", 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (params{{"q", "alice"}, {"page", 2}}); !reflect.DeepEqual(vals, want) {
		t.Errorf("expected %v, got %v", want, vals)
	}
}

func Test_marshal_positional_optional_omitted(t *testing.T) {

	desc := descriptor{params: []parameter{{"q", true}, {"page", false}}}

	vals, err := marshalParams(&desc, []any{"alice", nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (params{{"q", "alice"}}); !reflect.DeepEqual(vals, want) {
		t.Errorf("expected %v, got %v", want, vals)
	}
}

func Test_marshal_positional_required_missing(t *testing.T) {

	desc := descriptor{params: []parameter{{"q", true}, {"page", false}}}

	_, err := marshalParams(&desc, []any{nil, 2})

	var apiErr Error
	if !errors.As(err, &apiErr) || apiErr.Code != ErrorCodeMissingRequiredParameter {
		t.Errorf("expected missing required parameter error, got %v", err)
	}
}

func Test_marshal_flatten(t *testing.T) {

	desc := descriptor{}

	vals, err := marshalParams(&desc, []any{searchRequest{Query: "alice", Skip: "x"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// nil page and the skipped fields must not appear
	if want := (params{{"query", "alice"}}); !reflect.DeepEqual(vals, want) {
		t.Errorf("expected %v, got %v", want, vals)
	}
}

func Test_marshal_flatten_map(t *testing.T) {

	desc := descriptor{}

	vals, err := marshalParams(&desc, []any{map[string]any{"b": 2, "a": 1, "nope": nil}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (params{{"a", 1}, {"b", 2}}); !reflect.DeepEqual(vals, want) {
		t.Errorf("expected %v, got %v", want, vals)
	}
}

func Test_marshal_projection(t *testing.T) {

	page := 3
	desc := descriptor{params: []parameter{{"query", false}, {"page", false}, {"missing", false}}}

	// two declared parameters are not matched by the single structured
	// argument, so the argument is flattened and projected
	vals, err := marshalParams(&desc, []any{searchRequest{Query: "alice", Page: &page}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (params{{"query", "alice"}, {"page", &page}}); !reflect.DeepEqual(vals, want) {
		t.Errorf("expected %v, got %v", want, vals)
	}
}

func Test_marshal_no_args(t *testing.T) {

	desc := descriptor{}

	vals, err := marshalParams(&desc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vals) != 0 {
		t.Errorf("expected empty parameter set, got %v", vals)
	}
}

func Test_query_encoding(t *testing.T) {

	type filter struct {
		Min int `json:"min"`
	}

	vals := params{
		{"q", "alice"},
		{"page", 2},
		{"filter", filter{Min: 1}},
		{"ids", []int{1, 2}},
	}

	q, err := vals.query()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]string{
		"q":      "alice",     // strings pass through unchanged
		"page":   "2",         // everything else is JSON
		"filter": `{"min":1}`,
		"ids":    "[1,2]",
	}
	for name, want := range expected {
		if got := q.Get(name); got != want {
			t.Errorf("expected %s=%q, got %q", name, want, got)
		}
	}
}

func Test_body(t *testing.T) {

	if got := body(params{{"v", "hello"}}, []any{"hello"}); got != "hello" {
		t.Errorf("expected bare primitive body, got %v", got)
	}
	if got := body(params{{"v", 42}}, []any{42}); got != 42 {
		t.Errorf("expected bare primitive body, got %v", got)
	}

	got := body(params{{"name", "bob"}}, []any{searchRequest{}})
	if want := map[string]any{"name": "bob"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected map body %v, got %v", want, got)
	}

	if got := body(nil, nil); !reflect.DeepEqual(got, map[string]any{}) {
		t.Errorf("expected empty map body, got %v", got)
	}
}
