package nets

import (
	"net/http"
	"time"
)

// UserAgent identifies the client to puzzle servers, which ask automated
// tools to name themselves.
type UserAgent string

func (Module) UserAgent() UserAgent {
	return "github.com/reusee/chrono"
}

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	agent UserAgent,
) HTTPClient {
	return &http.Client{
		Transport: &agentTransport{
			agent: string(agent),
			next: &http.Transport{
				DialContext: dialer.DialContext,
			},
		},
		Timeout: time.Minute,
	}
}

type agentTransport struct {
	agent string
	next  http.RoundTripper
}

func (a *agentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if a.agent == "" || req.Header.Get("User-Agent") != "" {
		return a.next.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", a.agent)
	return a.next.RoundTrip(req)
}
