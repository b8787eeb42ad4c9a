// Package restconf is a minimal RESTCONF (RFC 8040) client speaking YANG-JSON over HTTPS
// with HTTP Basic authentication.
package restconf

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// MediaTypeYANGJSON is sent as both Accept and Content-Type.
	MediaTypeYANGJSON = "application/yang-data+json"
	// DataRoot is the RESTCONF datastore resource.
	DataRoot = "/restconf/data"
	// DefaultTimeout bounds a single request when Options.Timeout is zero.
	DefaultTimeout = 30 * time.Second
)

// Options configures a Client.
type Options struct {
	// Host is a hostname, address or host:port. A value starting with http:// or
	// https:// is used as the base as-is.
	Host     string
	User     string
	Password string
	// VerifyTLS enables server certificate verification. Off by default, matching
	// the self-signed certificates lab devices ship with.
	VerifyTLS bool
	Timeout   time.Duration
	// Transport overrides the HTTP transport. VerifyTLS is ignored when set.
	Transport http.RoundTripper
}

// Client issues RESTCONF requests against a single device.
type Client struct {
	baseURL  string
	user     string
	password string
	http     *http.Client
}

// New validates opts and builds a Client. No connection is made.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Host) == "" {
		return nil, fmt.Errorf("host is required")
	}
	if strings.TrimSpace(opts.User) == "" {
		return nil, fmt.Errorf("user is required")
	}
	if opts.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	transport := opts.Transport
	if transport == nil {
		tr := http.DefaultTransport.(*http.Transport).Clone()
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: !opts.VerifyTLS} //nolint:gosec // operator controlled
		transport = tr
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:  baseURL(opts.Host),
		user:     opts.User,
		password: opts.Password,
		http:     &http.Client{Transport: transport, Timeout: timeout},
	}, nil
}

func baseURL(host string) string {
	host = strings.TrimSuffix(strings.TrimSpace(host), "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	return host + DataRoot
}

// Path joins resource segments into a datastore path such as
// "/Cisco-IOS-XE-native:native/vrf/definition=CORP".
func Path(segments ...string) string {
	return "/" + strings.Join(segments, "/")
}

// ListEntry addresses a list instance by key, escaping the key value.
func ListEntry(list, key string) string {
	return list + "=" + url.PathEscape(key)
}

// URL returns the absolute URL of a datastore path.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// Get reads a resource. Every HTTP response, including 404, is returned as a Response;
// only connection-level faults produce an error.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Put replaces a resource with body.
func (c *Client) Put(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	target := c.URL(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	req.Header.Set("Accept", MediaTypeYANGJSON)
	req.Header.Set("Content-Type", MediaTypeYANGJSON)
	req.SetBasicAuth(c.user, c.password)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: target, Err: fmt.Errorf("read response body: %w", err)}
	}

	return &Response{
		Method:     method,
		URL:        target,
		StatusCode: res.StatusCode,
		Body:       data,
	}, nil
}
