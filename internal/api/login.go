package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/moyn-dev/moyn-cli/internal/config"
	"github.com/moyn-dev/moyn-cli/internal/services"
)

// NewSession checks the shape of a token and base URL without any I/O. An
// empty base URL selects the default service.
func NewSession(token, baseURL string) (config.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return config.Session{}, services.Wrap(services.ErrValidation, "api", "login", "api token required", nil)
	}
	if !strings.HasPrefix(token, config.TokenPrefix) {
		return config.Session{}, services.Wrap(services.ErrValidation, "api", "login",
			fmt.Sprintf("invalid api token: expected %q prefix", config.TokenPrefix), nil)
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = config.DefaultAPIURL
	}
	if err := config.ValidateAPIURL(baseURL); err != nil {
		return config.Session{}, services.Wrap(services.ErrValidation, "api", "login", "", err)
	}
	return config.Session{APIToken: token, APIURL: baseURL}, nil
}

// Login validates the token locally, confirms it with one authenticated
// request and returns the session to persist.
func Login(ctx context.Context, token, baseURL string, opts ...Option) (config.Session, error) {
	session, err := NewSession(token, baseURL)
	if err != nil {
		return config.Session{}, err
	}
	client, err := New(session, opts...)
	if err != nil {
		return config.Session{}, err
	}
	if err := client.Verify(ctx); err != nil {
		return config.Session{}, err
	}
	return session, nil
}

// Verify confirms the session token is accepted by the service.
func (c *Client) Verify(ctx context.Context) error {
	_, err := c.do(ctx, "verify token", http.MethodGet, postsPath, nil)
	return err
}
