// Package auth provides VictorOps public API authentication.
package auth

import "net/http"

// Credentials holds VictorOps API authentication credentials.
type Credentials struct {
	APIID  string
	APIKey string
}

// Apply adds authentication headers to an HTTP request.
func (c *Credentials) Apply(req *http.Request) {
	if c == nil {
		return
	}
	req.Header.Set("X-VO-Api-Id", c.APIID)
	req.Header.Set("X-VO-Api-Key", c.APIKey)
}

// Valid reports whether credentials are configured.
func (c *Credentials) Valid() bool {
	return c != nil && c.APIID != "" && c.APIKey != ""
}
