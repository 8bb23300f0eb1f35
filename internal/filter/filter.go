// Package filter models the video listing filter state and its query-string
// form. The state round-trips through the query string: every explicitly-set
// field survives serialization, while fields at their defaults collapse out.
package filter

// SourceType identifies the kind of video source a listing is scoped to.
type SourceType string

const (
	SourceFavorite   SourceType = "favorite"
	SourceCollection SourceType = "collection"
	SourceSubmission SourceType = "submission"
	SourceWatchLater SourceType = "watch_later"
)

// Valid reports whether t is one of the known source types.
func (t SourceType) Valid() bool {
	switch t {
	case SourceFavorite, SourceCollection, SourceSubmission, SourceWatchLater:
		return true
	}
	return false
}

// Source scopes a listing to a single configured video source.
type Source struct {
	Type SourceType
	ID   int64
}

// StatusFilter narrows a listing by download outcome.
type StatusFilter string

const (
	StatusNone      StatusFilter = ""
	StatusFailed    StatusFilter = "failed"
	StatusSucceeded StatusFilter = "succeeded"
	StatusWaiting   StatusFilter = "waiting"
	StatusSkipped   StatusFilter = "skipped"
	StatusPaid      StatusFilter = "paid"
)

// ParseStatusFilter validates raw against the closed enum. Unknown values
// resolve to StatusNone rather than an error, matching how the console
// treats a stale query string.
func ParseStatusFilter(raw string) StatusFilter {
	switch StatusFilter(raw) {
	case StatusFailed, StatusSucceeded, StatusWaiting, StatusSkipped, StatusPaid:
		return StatusFilter(raw)
	}
	return StatusNone
}

// SortBy selects the listing sort column.
type SortBy string

const (
	SortUnset         SortBy = ""
	SortDownloadTime  SortBy = "download_time"
	SortSubscribeTime SortBy = "subscribe_time"
	SortPublishTime   SortBy = "publish_time"
)

// ParseSortBy validates raw against the closed enum, resolving unknown
// values to SortUnset.
func ParseSortBy(raw string) SortBy {
	switch SortBy(raw) {
	case SortDownloadTime, SortSubscribeTime, SortPublishTime:
		return SortBy(raw)
	}
	return SortUnset
}

// SortOrder selects the listing sort direction.
type SortOrder string

const (
	OrderUnset SortOrder = ""
	OrderAsc   SortOrder = "asc"
	OrderDesc  SortOrder = "desc"
)

// ParseSortOrder validates raw, resolving unknown values to OrderUnset.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(raw) {
	case OrderAsc, OrderDesc:
		return SortOrder(raw)
	}
	return OrderUnset
}

// State is the complete filter state of the video listing.
type State struct {
	Query     string
	Page      int
	PageSize  int
	Source    *Source
	Status    StatusFilter
	SortBy    SortBy
	SortOrder SortOrder
}

// Default returns the initial filter state.
func Default() State {
	return State{}
}

// EffectiveSortBy resolves the sort column, falling back to the
// source-dependent default: subscribe time when a source is selected,
// download time otherwise.
func (s State) EffectiveSortBy() SortBy {
	if s.SortBy != SortUnset {
		return s.SortBy
	}
	if s.Source != nil {
		return SortSubscribeTime
	}
	return SortDownloadTime
}

// EffectiveSortOrder resolves the sort direction, defaulting to descending.
func (s State) EffectiveSortOrder() SortOrder {
	if s.SortOrder != OrderUnset {
		return s.SortOrder
	}
	return OrderDesc
}
