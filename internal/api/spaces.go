package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/moyn-dev/moyn-cli/internal/services"
)

// ListSpaces returns the spaces owned by the account.
func (c *Client) ListSpaces(ctx context.Context) ([]Space, error) {
	body, err := c.do(ctx, "list spaces", http.MethodGet, spacesPath, nil)
	if err != nil {
		return nil, err
	}
	var resp spacesResponse
	if err := decode("list spaces", body, &resp); err != nil {
		return nil, err
	}
	if resp.Spaces == nil {
		return []Space{}, nil
	}
	return resp.Spaces, nil
}

// CreateSpace validates req locally and creates the space. Nothing is sent
// when validation fails.
func (c *Client) CreateSpace(ctx context.Context, req SpaceRequest) (Space, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	req.Description = strings.TrimSpace(req.Description)
	req.Visibility = strings.ToLower(strings.TrimSpace(req.Visibility))
	if err := req.Validate(); err != nil {
		return Space{}, err
	}
	body, err := c.do(ctx, "create space", http.MethodPost, spacesPath, createSpaceRequest{Space: req})
	if err != nil {
		return Space{}, err
	}
	var resp spaceResponse
	if err := decode("create space", body, &resp); err != nil {
		return Space{}, err
	}
	return resp.Space, nil
}

// ShowSpace fetches a single space by slug.
func (c *Client) ShowSpace(ctx context.Context, slug string) (Space, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Space{}, services.Wrap(services.ErrValidation, "api", "show space", "space slug required", nil)
	}
	body, err := c.do(ctx, "show space", http.MethodGet, spacesPath+"/"+url.PathEscape(slug), nil)
	if err != nil {
		return Space{}, err
	}
	var resp spaceResponse
	if err := decode("show space", body, &resp); err != nil {
		return Space{}, err
	}
	return resp.Space, nil
}
