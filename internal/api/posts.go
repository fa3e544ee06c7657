package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	postsPath  = "/api/v1/posts"
	spacesPath = "/api/v1/spaces"
)

// Publish creates a post. Posts naming a space go to that space's posts
// collection; all others go to the account's own posts.
func (c *Client) Publish(ctx context.Context, post Post) (PostSummary, error) {
	path := postsPath
	if space := strings.TrimSpace(post.Space); space != "" {
		path = spacesPath + "/" + url.PathEscape(space) + "/posts"
	}
	payload := createPostRequest{Post: createPost{
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		Slug:      post.Slug,
		Tags:      post.Tags,
	}}
	body, err := c.do(ctx, "publish post", http.MethodPost, path, payload)
	if err != nil {
		return PostSummary{}, err
	}
	var resp postResponse
	if err := decode("publish post", body, &resp); err != nil {
		return PostSummary{}, err
	}
	return resp.Post, nil
}

// ListPosts returns the account's posts in server order.
func (c *Client) ListPosts(ctx context.Context) ([]PostSummary, error) {
	body, err := c.do(ctx, "list posts", http.MethodGet, postsPath, nil)
	if err != nil {
		return nil, err
	}
	var resp postsResponse
	if err := decode("list posts", body, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return []PostSummary{}, nil
	}
	return resp.Posts, nil
}

// DeletePost removes the post with the given ID.
func (c *Client) DeletePost(ctx context.Context, id uint64) error {
	path := postsPath + "/" + strconv.FormatUint(id, 10)
	_, err := c.do(ctx, "delete post", http.MethodDelete, path, nil)
	return err
}
