package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"syscall"
)

// Client posts admin chat messages to the workflow engine webhooks.
type Client struct {
	urls       map[Kind]string
	httpClient *http.Client
}

// NewClient creates a Client. A zero timeout means DefaultTimeout.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		urls: map[Kind]string{
			KindDepartment:     cfg.DepartmentURL,
			KindBatch:          cfg.BatchURL,
			KindPageNavigation: cfg.PageNavigationURL,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetURL overrides the webhook URL of one workflow, for testing purposes.
func (c *Client) SetURL(kind Kind, url string) {
	c.urls[kind] = url
}

// URL returns the webhook URL configured for kind.
func (c *Client) URL(kind Kind) string {
	return c.urls[kind]
}

// Send posts message to the workflow of the given kind and returns the raw JSON reply.
// Every failure is an *Error; nothing is retried.
func (c *Client) Send(ctx context.Context, kind Kind, message string) (json.RawMessage, error) {
	url, ok := c.urls[kind]
	if !ok || url == "" {
		return nil, &Error{Kind: ErrorKindInternal, Err: fmt.Errorf("%w: %q", ErrUnknownWorkflow, kind)}
	}

	body, err := json.Marshal(Request{Message: message})
	if err != nil {
		return nil, &Error{Kind: ErrorKindInternal, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: ErrorKindRequest, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:       ErrorKindStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("workflow %s API error %d: %s", kind, resp.StatusCode, string(raw)),
		}
	}

	if !json.Valid(raw) {
		return nil, &Error{Kind: ErrorKindRequest, Err: fmt.Errorf("invalid JSON response from workflow %s", kind)}
	}

	return json.RawMessage(raw), nil
}

func classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return &Error{Kind: ErrorKindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: ErrorKindTimeout, Err: err}
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return &Error{Kind: ErrorKindConnect, Err: err}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &Error{Kind: ErrorKindConnect, Err: err}
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Kind: ErrorKindConnect, Err: err}
	}
	return &Error{Kind: ErrorKindRequest, Err: err}
}
