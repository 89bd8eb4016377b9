package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/joshuafuller/dog/internal/dogerr"
	"github.com/joshuafuller/dog/internal/logging"
)

const dnsMessageContentType = "application/dns-message"

// HTTPSTransport is DNS-over-HTTPS: POST the raw request to a complete
// nameserver URL and read the raw response body.
type HTTPSTransport struct {
	Client *http.Client
}

// NewHTTPS returns an HTTPSTransport using a client scoped to the call's
// context deadline rather than a package-global timeout.
func NewHTTPS() *HTTPSTransport {
	return &HTTPSTransport{Client: &http.Client{}}
}

func (t *HTTPSTransport) Send(ctx context.Context, request []byte, server string) ([]byte, error) {
	endpoint, err := ParseEndpoint(server)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(request))
	if err != nil {
		return nil, &dogerr.ArgumentError{Field: "nameserver", Message: err.Error()}
	}
	req.Header.Set("Content-Type", dnsMessageContentType)
	req.Header.Set("Accept", dnsMessageContentType)

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, &dogerr.NetworkError{Operation: "https request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &dogerr.NetworkError{Operation: "https request", Err: httpStatusError(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &dogerr.NetworkError{Operation: "https read body", Err: err}
	}

	logging.L.Debug().Str("server", server).Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("doh response received")
	return body, nil
}

type httpStatusErr struct{ code int }

func httpStatusError(code int) error { return httpStatusErr{code: code} }

func (e httpStatusErr) Error() string {
	return fmt.Sprintf("%d %s", e.code, http.StatusText(e.code))
}
