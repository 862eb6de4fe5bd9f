package proxy

import (
	"encoding/json"
	"io"
	"net/http"
)

// unmarshalResult maps an HTTP response onto the method's declared result.
// out is a pointer to the result value, nil for methods without one; its
// concrete type carries the full generic signature, so parameterized results
// decode with their element types preserved.
//
// An error status is never decoded as a result. When the remote service
// responded with a structured error body it is surfaced inside the returned
// RemoteError.
func unmarshalResult(desc *descriptor, res *http.Response, out any) error {

	defer res.Body.Close()

	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		if out == nil {
			io.Copy(io.Discard, res.Body)
			return nil
		}
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return &RemoteError{URL: desc.url(), Status: res.StatusCode, cause: err}
		}
		return nil
	}

	remoteErr := &RemoteError{URL: desc.url(), Status: res.StatusCode}

	var body Error
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Code != "" {
		remoteErr.Body = &body
	}

	return remoteErr
}
