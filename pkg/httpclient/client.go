package httpclient

import (
	"net/http"
	"time"
)

// ClientType selects the header profile used when talking to feed hosts
type ClientType string

const (
	// BrowserClient uses browser-like headers. Some podcast CDNs answer
	// 406 (Not Acceptable) to requests without a browser User-Agent.
	BrowserClient ClientType = "browser"

	// SimpleClient uses curl-like headers. Hosts behind bot protection
	// sometimes block browser-like User-Agents but let simple tools through.
	SimpleClient ClientType = "simple"
)

// HTTPClient wraps an http.Client with a header profile and a request timeout.
type HTTPClient struct {
	client     *http.Client
	clientType ClientType
}

// NewClient creates a new HTTP client with the specified type
func NewClient(clientType ClientType) *HTTPClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Follow up to 10 redirects; enclosure URLs commonly bounce
			// through tracking redirectors.
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	return &HTTPClient{
		client:     client,
		clientType: clientType,
	}
}

// Do executes an HTTP request with the appropriate headers for the client type
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.setHeaders(req)
	return c.client.Do(req)
}

// Get is a convenience method for GET requests
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	switch c.clientType {
	case BrowserClient:
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
		req.Header.Set("Accept", "application/rss+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.7")
		req.Header.Set("Accept-Language", "ar,en-US;q=0.9,en;q=0.8")
		req.Header.Set("Connection", "keep-alive")

	case SimpleClient:
		req.Header.Set("User-Agent", "curl/8.7.1")

	default:
		// Default: use Go's default User-Agent
	}
}
