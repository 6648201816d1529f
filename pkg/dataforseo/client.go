package dataforseo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/samvad-hq/dataforseo-go/pkg/httpclient"
)

const (
	productionBaseURL = "https://api.dataforseo.com/v3/"
	sandboxBaseURL    = "https://sandbox.dataforseo.com/v3/"

	defaultTimeout = 30 * time.Second
)

// Client is a handle on the DataForSEO v3 API. It holds the credential and
// the base URL, both fixed at construction, so a single Client is safe for
// concurrent use without locking.
type Client struct {
	baseURL string
	headers map[string]string
	http    httpclient.Client
	log     *zap.SugaredLogger
}

type settings struct {
	sandbox bool
	baseURL string
	timeout time.Duration
	http    httpclient.Client
	log     *zap.SugaredLogger
}

// Option customizes a Client at construction time.
type Option func(*settings)

// WithSandbox points the client at the sandbox host instead of production.
// Payloads are unaffected; only the base host changes.
func WithSandbox() Option {
	return func(s *settings) { s.sandbox = true }
}

// WithBaseURL overrides the base URL entirely. Mainly a seam for tests.
func WithBaseURL(u string) Option {
	return func(s *settings) { s.baseURL = u }
}

// WithTimeout sets the per-request timeout on the default transport.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithHTTPClient injects a transport, replacing the default resty client.
func WithHTTPClient(c httpclient.Client) Option {
	return func(s *settings) { s.http = c }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *settings) { s.log = l }
}

// New builds a Client for the given API key. The key is sent as HTTP basic
// authorization on every request, per the DataForSEO convention.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &InputError{Reason: "api key must not be empty"}
	}

	s := settings{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&s)
	}

	baseURL := productionBaseURL
	if s.sandbox {
		baseURL = sandboxBaseURL
	}
	if s.baseURL != "" {
		baseURL = s.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
	}

	transport := s.http
	if transport == nil {
		transport = httpclient.NewRestyClient(s.timeout)
	}
	log := s.log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Client{
		baseURL: baseURL,
		headers: map[string]string{
			"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey)),
		},
		http: transport,
		log:  log,
	}, nil
}

// BaseURL returns the base URL the client sends requests to.
func (c *Client) BaseURL() string { return c.baseURL }

// call implements the shared dispatch rule: a task id fetches an existing
// task, the live flag selects the synchronous path, and everything else
// posts an asynchronous task. Exactly one round trip per call.
func (c *Client) call(ctx context.Context, ep endpoint, subject Subject, opts *Options) (Response, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if opts.TaskID != "" {
		return c.get(ctx, ep.name, ep.taskGetPath+opts.TaskID)
	}

	subjects, err := subject.list()
	if err != nil {
		return nil, err
	}
	tasks := buildTasks(ep, subjects, opts)

	path := ep.taskPostPath
	if opts.Live {
		path = ep.livePath
	}
	return c.post(ctx, ep.name, path, tasks)
}

func (c *Client) get(ctx context.Context, op, path string) (Response, error) {
	url := c.baseURL + path
	c.log.Debugw("dataforseo request", "op", op, "method", http.MethodGet, "url", url)

	resp, err := c.http.Get(ctx, url, c.headers)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return c.finish(op, url, resp)
}

func (c *Client) post(ctx context.Context, op, path string, tasks []map[string]any) (Response, error) {
	url := c.baseURL + path
	c.log.Debugw("dataforseo request", "op", op, "method", http.MethodPost, "url", url, "tasks", len(tasks))

	resp, err := c.http.Post(ctx, url, c.headers, tasks)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return c.finish(op, url, resp)
}

// finish decodes the response body and classifies the outcome. The decoded
// body is returned verbatim even when the call failed at the application
// level, so callers can inspect the remote error in full.
func (c *Client) finish(op, url string, resp httpclient.Response) (Response, error) {
	var body Response
	decodeErr := json.Unmarshal(resp.Body(), &body)

	if resp.StatusCode() >= http.StatusBadRequest {
		c.log.Debugw("dataforseo response", "op", op, "status", resp.StatusCode())
		return body, &APIError{
			HTTPStatus: resp.StatusCode(),
			Message:    body.statusMessage(),
			Body:       body,
		}
	}
	if decodeErr != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if body.TasksError() > 0 {
		return body, &APIError{
			HTTPStatus: resp.StatusCode(),
			Message:    body.statusMessage(),
			Body:       body,
		}
	}

	c.log.Debugw("dataforseo response", "op", op, "status", resp.StatusCode(), "tasks", len(body.Tasks()))
	return body, nil
}
