package victorops

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/tphakala/go-victorops/internal/api"
)

// exec performs one authenticated API call and decodes the JSON response
// into result. Every public method delegates here.
//
// The returned RequestDetails carries the status code and the raw
// request/response bodies. It is populated whenever a response was
// received, including non-success statuses, so it may be non-nil even
// when err is not.
func exec(ctx context.Context, t *api.Transport, method, path string, query url.Values, body, result any, headers http.Header) (*RequestDetails, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, &SerializationError{Op: "marshal", Err: err}
		}
	}

	resp, err := t.Do(ctx, &api.Request{
		Method:  method,
		Path:    path,
		Query:   query,
		Body:    payload,
		Headers: headers,
	})
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	details := &RequestDetails{
		StatusCode:   resp.StatusCode,
		RequestBody:  string(payload),
		ResponseBody: string(resp.Body),
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return details, parseError(resp.StatusCode, resp.Body)
	}

	if result != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, result); err != nil {
			return details, &SerializationError{Op: "unmarshal", Err: err}
		}
	}

	return details, nil
}
