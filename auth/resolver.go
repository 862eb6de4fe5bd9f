package auth

import (
	"net/http"
)

// HeaderResolver supplies outgoing call headers with a Bearer token carrying
// the calling service's system claims. It satisfies the header resolver
// contract of the proxy package.
type HeaderResolver struct {
	agent string
}

func NewHeaderResolver(agent string) *HeaderResolver {
	return &HeaderResolver{agent: agent}
}

func (hr *HeaderResolver) HeadersFor(contract string) (http.Header, error) {

	token, err := GenerateToken(NewSystemClaims(hr.agent))
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set(HttpHeaderAuthorization, "Bearer "+token)
	return headers, nil
}
