package httputil

import (
	"net/http"
	"net/url"
	"time"
)

// Clients holds the plain HTTP clients used outside the browser pipeline.
// Probe goes to the target site (optionally through the scrape proxy) and is
// used for reachability checks only.
type Clients struct {
	Probe *http.Client
}

func NewClients(proxyURL string) *Clients {
	transport := &http.Transport{}
	if proxyURL != "" {
		if parsed, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(parsed)
		}
	}

	probe := &http.Client{
		Timeout:   15 * time.Second,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &Clients{Probe: probe}
}

// ProbeOrigin issues a HEAD against the site origin and reports whether it
// answered at all. Any HTTP status counts as reachable.
func (c *Clients) ProbeOrigin(origin, userAgent string) bool {
	req, err := http.NewRequest(http.MethodHead, origin, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.Probe.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
