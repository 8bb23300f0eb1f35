package api

import (
	"encoding/json"

	"bilictl/internal/filter"
	"bilictl/internal/statusdiff"
)

// VideoInfo is one row of the video listing.
type VideoInfo struct {
	ID             int64             `json:"id"`
	BVID           string            `json:"bvid"`
	Name           string            `json:"name"`
	UpperName      string            `json:"upper_name"`
	ShouldDownload bool              `json:"should_download"`
	IsPaidVideo    bool              `json:"is_paid_video"`
	DownloadStatus statusdiff.Vector `json:"download_status"`
}

// PageInfo is the per-page status of a multi-part video.
type PageInfo struct {
	ID             int64             `json:"id"`
	CID            int64             `json:"cid"`
	PID            int               `json:"pid"`
	Name           string            `json:"name"`
	DownloadStatus statusdiff.Vector `json:"download_status"`
}

// VideosResponse is the paginated listing payload.
type VideosResponse struct {
	Videos     []VideoInfo `json:"videos"`
	TotalCount int64       `json:"total_count"`
}

// VideoResponse is the detail payload for a single video.
type VideoResponse struct {
	Video VideoInfo  `json:"video"`
	Pages []PageInfo `json:"pages"`
}

// UpdateVideoStatusRequest carries an absolute-mode edit for one video.
type UpdateVideoStatusRequest struct {
	VideoUpdates   []statusdiff.Update     `json:"video_updates,omitempty"`
	PageUpdates    []statusdiff.PageUpdate `json:"page_updates,omitempty"`
	ShouldDownload *bool                   `json:"should_download,omitempty"`
	IsPaidVideo    *bool                   `json:"is_paid_video,omitempty"`
}

// UpdateVideoStatusResponse echoes the refreshed video and pages.
type UpdateVideoStatusResponse struct {
	Success bool       `json:"success"`
	Video   VideoInfo  `json:"video"`
	Pages   []PageInfo `json:"pages"`
}

// UpdateFilteredVideoStatusRequest carries a sparse-mode edit across every
// video matched by the filter (or the explicit id list when present).
type UpdateFilteredVideoStatusRequest struct {
	filter.Params
	VideoIDs       []int64             `json:"video_ids,omitempty"`
	VideoUpdates   []statusdiff.Update `json:"video_updates,omitempty"`
	PageUpdates    []statusdiff.Update `json:"page_updates,omitempty"`
	ShouldDownload *bool               `json:"should_download,omitempty"`
	IsPaidVideo    *bool               `json:"is_paid_video,omitempty"`
}

// UpdateFilteredVideoStatusResponse reports how many rows the batch touched.
type UpdateFilteredVideoStatusResponse struct {
	Success            bool `json:"success"`
	UpdatedVideosCount int  `json:"updated_videos_count"`
	UpdatedPagesCount  int  `json:"updated_pages_count"`
}

// ResetVideoStatusRequest resets failed tasks; force resets completed ones too.
type ResetVideoStatusRequest struct {
	Force bool `json:"force"`
}

// ResetVideoResponse echoes the reset video and the pages that changed.
type ResetVideoResponse struct {
	Resetted bool       `json:"resetted"`
	Video    VideoInfo  `json:"video"`
	Pages    []PageInfo `json:"pages"`
}

// ResetFilteredVideoStatusRequest resets every video matched by the filter.
type ResetFilteredVideoStatusRequest struct {
	filter.Params
	Force bool `json:"force"`
}

// ResetFilteredVideosResponse reports how many rows a filtered reset touched.
type ResetFilteredVideosResponse struct {
	Resetted            bool `json:"resetted"`
	ResettedVideosCount int  `json:"resetted_videos_count"`
	ResettedPagesCount  int  `json:"resetted_pages_count"`
}

// ClearAndResetVideoStatusResponse reports a full wipe of one video's state.
// Warning carries a non-fatal local cleanup failure.
type ClearAndResetVideoStatusResponse struct {
	Warning *string   `json:"warning"`
	Video   VideoInfo `json:"video"`
}

// RetryTaskRequest retries a single task slot.
type RetryTaskRequest struct {
	TaskIndex int `json:"task_index"`
}

// SourceEntry is one configured video source.
type SourceEntry struct {
	ID       int64  `json:"id"`
	RemoteID int64  `json:"remote_id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Enabled  bool   `json:"enabled"`
}

// SourceCatalog is the configured sources partitioned by type.
type SourceCatalog struct {
	Favorites   []SourceEntry `json:"favorite"`
	Collections []SourceEntry `json:"collection"`
	Submissions []SourceEntry `json:"submission"`
	WatchLater  []SourceEntry `json:"watch_later"`
}

// FollowedFavorite is a remotely-followed favorite list.
type FollowedFavorite struct {
	FID        int64  `json:"fid"`
	Title      string `json:"title"`
	MediaCount int64  `json:"media_count"`
}

// FollowedFavoritesResponse lists the followed favorites.
type FollowedFavoritesResponse struct {
	Favorites []FollowedFavorite `json:"favorites"`
}

// FollowedCollection is a remotely-followed collection or series.
type FollowedCollection struct {
	SID   int64  `json:"sid"`
	MID   int64  `json:"mid"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// FollowedCollectionsResponse is a paginated followed-collections listing.
type FollowedCollectionsResponse struct {
	Collections []FollowedCollection `json:"collections"`
	Total       int64                `json:"total"`
}

// FollowedUpper is a followed uploader.
type FollowedUpper struct {
	MID  int64  `json:"mid"`
	Name string `json:"name"`
	Sign string `json:"sign"`
}

// FollowedUppersResponse is a paginated followed-uploaders listing.
type FollowedUppersResponse struct {
	Uppers []FollowedUpper `json:"uppers"`
	Total  int64           `json:"total"`
}

// InsertFavoriteRequest subscribes a followed favorite as a video source.
type InsertFavoriteRequest struct {
	FID  int64  `json:"fid"`
	Path string `json:"path"`
}

// InsertCollectionRequest subscribes a followed collection.
type InsertCollectionRequest struct {
	SID            int64  `json:"sid"`
	MID            int64  `json:"mid"`
	CollectionType string `json:"collection_type"`
	Path           string `json:"path"`
}

// InsertSubmissionRequest subscribes an uploader's submissions.
type InsertSubmissionRequest struct {
	UpperID int64  `json:"upper_id"`
	Path    string `json:"path"`
}

// RemoteConfig is the backend's configuration object. The console edits it
// read-modify-write, so unknown fields must survive a round trip; a generic
// map keeps the console forward-compatible with backend schema growth.
type RemoteConfig map[string]any

// TestNotifierResponse reports the outcome of a notifier ping.
type TestNotifierResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Details *string `json:"details"`
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
}
