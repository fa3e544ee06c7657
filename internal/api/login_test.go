package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyn-dev/moyn-cli/internal/api"
	"github.com/moyn-dev/moyn-cli/internal/config"
	"github.com/moyn-dev/moyn-cli/internal/services"
	"github.com/moyn-dev/moyn-cli/internal/testsupport"
)

func TestNewSession(t *testing.T) {
	session, err := api.NewSession("  "+testsupport.TestToken+" ", "")
	require.NoError(t, err)
	assert.Equal(t, testsupport.TestToken, session.APIToken)
	assert.Equal(t, config.DefaultAPIURL, session.APIURL)

	session, err = api.NewSession(testsupport.TestToken, "http://localhost:4000/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", session.APIURL)
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	_, err := api.NewSession("", "")
	require.ErrorIs(t, err, services.ErrValidation)

	_, err = api.NewSession("ghp_abc", "")
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), `"moyn_"`)

	_, err = api.NewSession(testsupport.TestToken, "not a url")
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestLoginVerifiesToken(t *testing.T) {
	server := testsupport.NewBlogServer(t)
	server.Handle(http.MethodGet, "/api/v1/posts", http.StatusOK, `{"posts":[]}`)

	session, err := api.Login(context.Background(), testsupport.TestToken, server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, session.APIURL)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/api/v1/posts", requests[0].Path)
	assert.Equal(t, "Bearer "+testsupport.TestToken, requests[0].Authorization)
}

func TestLoginRejectedToken(t *testing.T) {
	server := testsupport.NewBlogServer(t)
	server.Handle(http.MethodGet, "/api/v1/posts", http.StatusUnauthorized, `{"error":"invalid token"}`)

	_, err := api.Login(context.Background(), testsupport.TestToken, server.URL)
	require.ErrorIs(t, err, services.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestLoginMalformedTokenSkipsNetwork(t *testing.T) {
	server := testsupport.NewBlogServer(t)

	_, err := api.Login(context.Background(), "bad", server.URL)
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Empty(t, server.Requests())
}
