package checker

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/imroc/req/v3"

	"github.com/namelens/avail/internal/core"
	"github.com/namelens/avail/internal/httpclient"
)

// HTTPChecker probes a platform by fetching the profile or package URL for
// the target. Any response with a status of 400 or above means nothing is
// registered under that name.
type HTTPChecker struct {
	entry
	URL    string
	Client *req.Client
}

// NewHTTPChecker returns an HTTPChecker for the given URL template.
func NewHTTPChecker(category core.Category, name, urlTemplate string, client *req.Client) *HTTPChecker {
	return &HTTPChecker{
		entry:  entry{category: category, name: name},
		URL:    urlTemplate,
		Client: client,
	}
}

// Kind returns the checker kind.
func (c *HTTPChecker) Kind() core.CheckKind {
	return core.CheckKindHTTP
}

// Probe issues a single GET against the substituted URL.
func (c *HTTPChecker) Probe(ctx context.Context, target string) (Probe, error) {
	if c == nil || c.URL == "" {
		return Probe{}, errors.New("http checker is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	endpoint := substitute(c.URL, target)
	probe := Probe{Name: c.name, Server: endpoint}

	client := c.Client
	if client == nil {
		client = httpclient.New(httpclient.Options{})
	}

	resp, err := client.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		return probe, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	if resp == nil || resp.Response == nil {
		return probe, fmt.Errorf("GET %s: empty response", endpoint)
	}

	probe.StatusCode = resp.StatusCode
	probe.Available = resp.StatusCode >= http.StatusBadRequest
	return probe, nil
}
