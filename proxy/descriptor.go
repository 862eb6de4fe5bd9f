package proxy

import (
	"net/http"
	"strings"
)

// newDescriptor parses a `call` tag of the form
//
//	[VERB ]<path>[?name[!][&name[!]]...]
//
// into immutable invocation metadata for one method. VERB defaults to GET,
// the contract prefix is prepended to the path, and '!' marks a declared
// parameter as required. An empty or malformed tag degrades to defaults
// rather than failing; construction must not block contract binding.
func newDescriptor(key, baseURL, prefix, pattern string) (desc descriptor) {

	desc.key = key
	desc.baseURL = baseURL
	desc.verb = http.MethodGet

	rest := strings.TrimSpace(pattern)

	if sp := strings.IndexRune(rest, ' '); sp > 0 && !strings.HasPrefix(rest, "/") {
		desc.verb = strings.ToUpper(rest[:sp])
		rest = strings.TrimSpace(rest[sp+1:])
	}

	path := rest
	if q := strings.IndexRune(rest, '?'); q >= 0 {
		path = rest[:q]
		for _, p := range strings.Split(rest[q+1:], "&") {
			if p == "" {
				continue
			}
			required := strings.HasSuffix(p, "!")
			desc.params = append(desc.params, parameter{
				name:     strings.TrimSuffix(p, "!"),
				required: required,
			})
		}
	}

	desc.path = prefix + path

	return
}

// parameter is one declared named parameter of a method, in declaration
// order.
type parameter struct {
	name     string
	required bool
}

type descriptor struct {
	key     string
	baseURL string
	verb    string
	path    string
	params  []parameter
}

func (desc *descriptor) url() string {
	return desc.baseURL + desc.path
}
