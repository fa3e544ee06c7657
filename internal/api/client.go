package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/moyn-dev/moyn-cli/internal/config"
	"github.com/moyn-dev/moyn-cli/internal/logging"
	"github.com/moyn-dev/moyn-cli/internal/services"
)

// HeaderRequestID carries the per-request correlation identifier.
const HeaderRequestID = "X-Request-ID"

const defaultTimeout = 30 * time.Second

// Client performs authenticated requests against the blogging service. Each
// method is a single synchronous round trip; nothing is retried.
type Client struct {
	session config.Session
	http    *resty.Client
	logger  *slog.Logger
}

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if ua := strings.TrimSpace(userAgent); ua != "" {
			o.userAgent = ua
		}
	}
}

// WithLogger routes request logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ConfigOptions derives client options from the loaded configuration.
func ConfigOptions(cfg *config.Config) []Option {
	if cfg == nil {
		return nil
	}
	return []Option{
		WithTimeout(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second),
		WithUserAgent(cfg.HTTP.UserAgent),
	}
}

// New creates a client bound to session.
func New(session config.Session, opts ...Option) (*Client, error) {
	token := strings.TrimSpace(session.APIToken)
	if token == "" {
		return nil, services.Wrap(services.ErrConfiguration, "api", "new client", "api token required", nil)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(session.APIURL), "/")
	if err := config.ValidateAPIURL(baseURL); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "api", "new client", "", err)
	}

	options := clientOptions{timeout: defaultTimeout, userAgent: "moyn-cli"}
	for _, opt := range opts {
		opt(&options)
	}

	var rc *resty.Client
	if options.httpClient != nil {
		rc = resty.NewWithClient(options.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(options.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", options.userAgent).
		SetRetryCount(0)

	logger := logging.NewComponentLogger(options.logger, "api")
	rc.SetLogger(restyLogger{logger: logger})

	return &Client{
		session: config.Session{APIToken: token, APIURL: baseURL},
		http:    rc,
		logger:  logger,
	}, nil
}

// restyLogger routes resty's internal messages into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Session returns the session the client authenticates with.
func (c *Client) Session() config.Session {
	return c.session
}

// do sends one request and returns the raw body of a 2xx response. Transport
// failures are tagged ErrTransport; other statuses become *Error.
func (c *Client) do(ctx context.Context, operation, method, path string, body any) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := uuid.NewString()
	ctx = services.WithRequestID(ctx, requestID)
	logger := logging.WithContext(ctx, c.logger)

	req := c.http.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	latency := time.Since(start)
	if err != nil {
		logger.Debug("api request failed",
			logging.String("method", method),
			logging.String("path", path),
			logging.Duration("latency", latency),
			logging.Error(err),
		)
		return nil, services.Wrap(services.ErrTransport, "api", operation, fmt.Sprintf("%s %s%s", method, c.session.APIURL, path), err)
	}

	logger.Debug("api request",
		logging.String("method", method),
		logging.String("path", path),
		logging.Int("status", resp.StatusCode()),
		logging.Duration("latency", latency),
	)

	if !resp.IsSuccess() {
		return nil, newStatusError(operation, resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

// decode unmarshals a success body. A body the client cannot read means the
// service broke its contract, so it is reported as ErrServer.
func decode(operation string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return services.Wrap(services.ErrServer, "api", operation, "decode response", err)
	}
	return nil
}
