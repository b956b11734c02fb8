package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "ccm-project"

// HTTPClient embeds *resty.Client so callers configure and use it directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Requests carry the service User-Agent.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", userAgent)}
}
