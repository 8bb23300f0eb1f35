package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// FollowedFavorites lists the favorites the account follows.
func (c *Client) FollowedFavorites(ctx context.Context) (*FollowedFavoritesResponse, error) {
	var out FollowedFavoritesResponse
	if err := c.get(ctx, "/me/favorites", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FollowedCollections lists followed collections, paginated.
func (c *Client) FollowedCollections(ctx context.Context, pageNum, pageSize int) (*FollowedCollectionsResponse, error) {
	values := url.Values{}
	if pageNum > 0 {
		values.Set("page_num", strconv.Itoa(pageNum))
	}
	if pageSize > 0 {
		values.Set("page_size", strconv.Itoa(pageSize))
	}
	var out FollowedCollectionsResponse
	if err := c.get(ctx, "/me/collections", values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FollowedUppers lists followed uploaders, optionally filtered by name.
func (c *Client) FollowedUppers(ctx context.Context, name string, pageNum, pageSize int) (*FollowedUppersResponse, error) {
	values := url.Values{}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		values.Set("name", trimmed)
	}
	if pageNum > 0 {
		values.Set("page_num", strconv.Itoa(pageNum))
	}
	if pageSize > 0 {
		values.Set("page_size", strconv.Itoa(pageSize))
	}
	var out FollowedUppersResponse
	if err := c.get(ctx, "/me/uppers", values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubscribeFavorite configures a followed favorite as a video source.
func (c *Client) SubscribeFavorite(ctx context.Context, req InsertFavoriteRequest) error {
	if err := c.post(ctx, "/favorites", req, nil); err != nil {
		return err
	}
	c.InvalidateSources()
	return nil
}

// SubscribeCollection configures a followed collection as a video source.
func (c *Client) SubscribeCollection(ctx context.Context, req InsertCollectionRequest) error {
	if err := c.post(ctx, "/collections", req, nil); err != nil {
		return err
	}
	c.InvalidateSources()
	return nil
}

// SubscribeSubmission configures an uploader's submissions as a video source.
func (c *Client) SubscribeSubmission(ctx context.Context, req InsertSubmissionRequest) error {
	if err := c.post(ctx, "/submissions", req, nil); err != nil {
		return err
	}
	c.InvalidateSources()
	return nil
}
