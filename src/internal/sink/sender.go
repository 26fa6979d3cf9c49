package sink

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sender issues one webhook request.
type Sender interface {
	Send(req *http.Request) error
}

// HTTPClient interface for dependency injection in tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPSender sends requests with an HTTP client and treats any non-2xx
// response as a failure.
type HTTPSender struct {
	client HTTPClient
}

// NewHTTPSender returns a sender using client. If client is nil, an
// *http.Client with the given timeout is used; a zero timeout leaves the
// transport's own limits in charge.
func NewHTTPSender(client HTTPClient, timeout time.Duration) *HTTPSender {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPSender{client: client}
}

// Send implements Sender.
func (s *HTTPSender) Send(req *http.Request) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil
}
