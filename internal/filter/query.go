package filter

import (
	"net/url"
	"strconv"
)

// sourceKeys is the deserialization probe order. Only one source key is ever
// written by ToQuery, but an externally-edited query string could carry
// several; the first recognized key wins.
var sourceKeys = []SourceType{SourceCollection, SourceFavorite, SourceSubmission, SourceWatchLater}

// ToQuery serializes the state to URL query parameters. Fields holding their
// default values are omitted; sort_by and sort_order are included whenever
// explicitly set.
func (s State) ToQuery() url.Values {
	values := url.Values{}
	if s.Query != "" {
		values.Set("query", s.Query)
	}
	if s.Source != nil && s.Source.Type.Valid() {
		values.Set(string(s.Source.Type), strconv.FormatInt(s.Source.ID, 10))
	}
	if s.Status != StatusNone {
		values.Set("status_filter", string(s.Status))
	}
	if s.Page > 0 {
		values.Set("page", strconv.Itoa(s.Page))
	}
	if s.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(s.PageSize))
	}
	if s.SortBy != SortUnset {
		values.Set("sort_by", string(s.SortBy))
	}
	if s.SortOrder != OrderUnset {
		values.Set("sort_order", string(s.SortOrder))
	}
	return values
}

// Encode returns the encoded query string form of the state.
func (s State) Encode() string {
	return s.ToQuery().Encode()
}

// FromQuery reconstructs a State from URL query parameters. Unknown enum
// values collapse to their unset defaults; a missing page parses as 0.
func FromQuery(values url.Values) State {
	state := State{
		Query:     values.Get("query"),
		Status:    ParseStatusFilter(values.Get("status_filter")),
		SortBy:    ParseSortBy(values.Get("sort_by")),
		SortOrder: ParseSortOrder(values.Get("sort_order")),
	}

	for _, key := range sourceKeys {
		raw := values.Get(string(key))
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		state.Source = &Source{Type: key, ID: id}
		break
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		state.Page = page
	}
	if size, err := strconv.Atoi(values.Get("page_size")); err == nil && size > 0 {
		state.PageSize = size
	}
	return state
}

// Params is the JSON filter body shared by the batch status and reset
// endpoints. Nil fields are omitted from the payload.
type Params struct {
	Collection   *int64  `json:"collection,omitempty"`
	Favorite     *int64  `json:"favorite,omitempty"`
	Submission   *int64  `json:"submission,omitempty"`
	WatchLater   *int64  `json:"watch_later,omitempty"`
	Query        *string `json:"query,omitempty"`
	StatusFilter *string `json:"status_filter,omitempty"`
}

// ToParams converts the state to the JSON filter body. Pagination and sort
// fields are listing concerns and do not participate.
func (s State) ToParams() Params {
	var params Params
	if s.Source != nil {
		id := s.Source.ID
		switch s.Source.Type {
		case SourceCollection:
			params.Collection = &id
		case SourceFavorite:
			params.Favorite = &id
		case SourceSubmission:
			params.Submission = &id
		case SourceWatchLater:
			params.WatchLater = &id
		}
	}
	if s.Query != "" {
		query := s.Query
		params.Query = &query
	}
	if s.Status != StatusNone {
		status := string(s.Status)
		params.StatusFilter = &status
	}
	return params
}
