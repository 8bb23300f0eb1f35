package api

import (
	"context"
	"fmt"

	"bilictl/internal/filter"
)

// ListVideos fetches one page of the video listing scoped by state.
func (c *Client) ListVideos(ctx context.Context, state filter.State) (*VideosResponse, error) {
	var out VideosResponse
	if err := c.get(ctx, "/videos", state.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVideo fetches one video with its pages.
func (c *Client) GetVideo(ctx context.Context, id int64) (*VideoResponse, error) {
	var out VideoResponse
	if err := c.get(ctx, fmt.Sprintf("/videos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVideoStatus submits an absolute-mode edit for one video.
func (c *Client) UpdateVideoStatus(ctx context.Context, id int64, req UpdateVideoStatusRequest) (*UpdateVideoStatusResponse, error) {
	var out UpdateVideoStatusResponse
	if err := c.post(ctx, fmt.Sprintf("/videos/%d/update-status", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFilteredVideoStatus submits a sparse-mode batch edit.
func (c *Client) UpdateFilteredVideoStatus(ctx context.Context, req UpdateFilteredVideoStatusRequest) (*UpdateFilteredVideoStatusResponse, error) {
	var out UpdateFilteredVideoStatusResponse
	if err := c.post(ctx, "/videos/update-status", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetVideoStatus resets one video's failed tasks; force includes
// completed ones.
func (c *Client) ResetVideoStatus(ctx context.Context, id int64, force bool) (*ResetVideoResponse, error) {
	var out ResetVideoResponse
	if err := c.post(ctx, fmt.Sprintf("/videos/%d/reset-status", id), ResetVideoStatusRequest{Force: force}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetFilteredVideoStatus resets every video matched by the filter.
func (c *Client) ResetFilteredVideoStatus(ctx context.Context, req ResetFilteredVideoStatusRequest) (*ResetFilteredVideosResponse, error) {
	var out ResetFilteredVideosResponse
	if err := c.post(ctx, "/videos/reset-status", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearAndResetVideoStatus wipes one video's download state entirely,
// including its fetched pages and local files.
func (c *Client) ClearAndResetVideoStatus(ctx context.Context, id int64) (*ClearAndResetVideoStatusResponse, error) {
	var out ClearAndResetVideoStatusResponse
	if err := c.post(ctx, fmt.Sprintf("/videos/%d/clear-and-reset-status", id), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetryVideoTask retries a single video-level task slot.
func (c *Client) RetryVideoTask(ctx context.Context, id int64, taskIndex int) (*UpdateVideoStatusResponse, error) {
	var out UpdateVideoStatusResponse
	if err := c.post(ctx, fmt.Sprintf("/videos/%d/retry-task", id), RetryTaskRequest{TaskIndex: taskIndex}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetryPageTask retries a single page-level task slot.
func (c *Client) RetryPageTask(ctx context.Context, pageID int64, taskIndex int) (*UpdateVideoStatusResponse, error) {
	var out UpdateVideoStatusResponse
	if err := c.post(ctx, fmt.Sprintf("/pages/%d/retry-task", pageID), RetryTaskRequest{TaskIndex: taskIndex}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
