package proxy

import (
	"encoding/json"
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// param is one name/value pair produced by marshalling a call's arguments.
type param struct {
	name  string
	value any
}

type params []param

func (vals params) asMap() map[string]any {
	m := map[string]any{}
	for _, p := range vals {
		m[p.name] = p.value
	}
	return m
}

// query serializes the parameter set for a GET call. Strings pass through
// unchanged; all other values are JSON-encoded so structured values
// round-trip legibly.
func (vals params) query() (url.Values, error) {
	q := url.Values{}
	for _, p := range vals {
		s, err := textValue(p.value)
		if err != nil {
			return nil, err
		}
		q.Add(p.name, s)
	}
	return q, nil
}

func textValue(v any) (string, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return "", NewError(ErrorCodeMarshalling, "cannot serialize parameter value to JSON: "+err.Error())
	}
	return string(bytes), nil
}

// marshalParams maps a call's arguments onto the method's parameter set.
//
// When the method declares as many parameters as arguments were supplied,
// arguments are mapped by position. The match is by count alone; if the
// count coincides but the caller meant structured arguments, values are
// still attributed positionally.
//
// Otherwise every argument is flattened into a single name/value map;
// declared parameters then act as a projection of that map, and with no
// declared parameters the entire map is sent.
func marshalParams(desc *descriptor, args []any) (vals params, err error) {

	if len(desc.params) > 0 && len(desc.params) == len(args) {
		for i, p := range desc.params {
			v := args[i]
			if isNil(v) {
				if p.required {
					return nil, NewError(ErrorCodeMissingRequiredParameter,
						"cannot resolve value of required parameter '"+p.name+"'")
				}
				continue // optional without a value is simply omitted
			}
			vals = append(vals, param{p.name, v})
		}
		return
	}

	full, err := flattenArgs(args)
	if err != nil {
		return
	}

	if len(desc.params) > 0 {
		for _, p := range desc.params {
			if v, ok := full[p.name]; ok {
				vals = append(vals, param{p.name, v})
			}
		}
		return
	}

	names := make([]string, 0, len(full))
	for name := range full {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		vals = append(vals, param{name, full[name]})
	}
	return
}

// body selects the request payload for non-GET calls: a single primitive
// argument is sent as-is, anything else is sent as the flattened
// name/value map.
func body(vals params, args []any) any {
	if len(args) == 1 && !isNil(args[0]) && isPrimitive(args[0]) {
		return args[0]
	}
	return vals.asMap()
}

// flattenArgs merges the fields of every structured argument into one
// name/value map. Primitive arguments contribute nothing here; they are
// expected to be covered by declared parameters.
func flattenArgs(args []any) (map[string]any, error) {
	full := map[string]any{}
	for _, arg := range args {
		if err := flattenInto(full, arg); err != nil {
			return nil, err
		}
	}
	return full, nil
}

func flattenInto(full map[string]any, arg any) error {

	if isNil(arg) || isPrimitive(arg) {
		return nil
	}

	v := reflect.ValueOf(arg)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch v.Kind() {

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return NewError(ErrorCodeMarshalling,
				"cannot flatten map argument with non-string keys of type "+v.Type().String())
		}
		iter := v.MapRange()
		for iter.Next() {
			mv := iter.Value()
			if nilable(mv.Kind()) && mv.IsNil() {
				continue
			}
			full[iter.Key().String()] = mv.Interface()
		}

	case reflect.Struct:
		for _, f := range reflect.VisibleFields(v.Type()) {
			if !f.IsExported() || f.Anonymous {
				continue
			}
			name := fieldName(f)
			if name == "-" {
				continue
			}
			fv := v.FieldByIndex(f.Index)
			if nilable(fv.Kind()) && fv.IsNil() {
				continue // null-valued fields are omitted
			}
			full[name] = fv.Interface()
		}

	default:
		return NewError(ErrorCodeMarshalling,
			"cannot flatten argument of type "+v.Type().String())
	}

	return nil
}

// fieldName follows the json tag so flattened names match the wire names the
// same struct would have as a JSON body.
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func isPrimitive(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return nilable(rv.Kind()) && rv.IsNil()
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
