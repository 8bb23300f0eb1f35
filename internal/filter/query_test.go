package filter

import (
	"net/url"
	"testing"
)

func TestToQueryOmitsDefaults(t *testing.T) {
	if got := Default().Encode(); got != "" {
		t.Fatalf("default state should serialize empty, got %q", got)
	}

	state := State{Query: "space", Page: 3}
	values := state.ToQuery()
	if values.Get("query") != "space" {
		t.Fatalf("unexpected query: %q", values.Get("query"))
	}
	if values.Get("page") != "3" {
		t.Fatalf("unexpected page: %q", values.Get("page"))
	}
	for _, absent := range []string{"status_filter", "sort_by", "sort_order", "favorite", "collection"} {
		if values.Has(absent) {
			t.Fatalf("expected %q omitted, got %q", absent, values.Get(absent))
		}
	}
}

func TestRoundTripPreservesExplicitFields(t *testing.T) {
	states := []State{
		{Query: "旅行", Page: 7, PageSize: 50},
		{Source: &Source{Type: SourceFavorite, ID: 42}, Status: StatusFailed},
		{Source: &Source{Type: SourceCollection, ID: 9}, SortBy: SortPublishTime, SortOrder: OrderAsc},
		{Status: StatusPaid, SortBy: SortDownloadTime, SortOrder: OrderDesc},
		{Source: &Source{Type: SourceWatchLater, ID: 1}},
	}

	for _, state := range states {
		got := FromQuery(state.ToQuery())
		if got.Query != state.Query {
			t.Fatalf("query mismatch: got %q want %q", got.Query, state.Query)
		}
		if got.Page != state.Page {
			t.Fatalf("page mismatch: got %d want %d", got.Page, state.Page)
		}
		if got.PageSize != state.PageSize {
			t.Fatalf("page size mismatch: got %d want %d", got.PageSize, state.PageSize)
		}
		if got.Status != state.Status {
			t.Fatalf("status mismatch: got %q want %q", got.Status, state.Status)
		}
		if got.SortBy != state.SortBy {
			t.Fatalf("sort_by mismatch: got %q want %q", got.SortBy, state.SortBy)
		}
		if got.SortOrder != state.SortOrder {
			t.Fatalf("sort_order mismatch: got %q want %q", got.SortOrder, state.SortOrder)
		}
		switch {
		case state.Source == nil && got.Source != nil:
			t.Fatalf("unexpected source: %#v", got.Source)
		case state.Source != nil && (got.Source == nil || *got.Source != *state.Source):
			t.Fatalf("source mismatch: got %#v want %#v", got.Source, state.Source)
		}
	}
}

func TestFromQueryValidatesEnums(t *testing.T) {
	values := url.Values{}
	values.Set("status_filter", "exploded")
	values.Set("sort_by", "alphabetical")
	values.Set("sort_order", "sideways")
	values.Set("page", "-4")
	values.Set("favorite", "notanumber")

	state := FromQuery(values)
	if state.Status != StatusNone {
		t.Fatalf("invalid status should collapse to none, got %q", state.Status)
	}
	if state.SortBy != SortUnset || state.SortOrder != OrderUnset {
		t.Fatalf("invalid sort should collapse to unset, got %q/%q", state.SortBy, state.SortOrder)
	}
	if state.Page != 0 {
		t.Fatalf("invalid page should default to 0, got %d", state.Page)
	}
	if state.Source != nil {
		t.Fatalf("unparseable source id should be dropped, got %#v", state.Source)
	}
}

func TestEffectiveSortDefaultsDependOnSource(t *testing.T) {
	plain := State{}
	if plain.EffectiveSortBy() != SortDownloadTime {
		t.Fatalf("expected download_time default, got %q", plain.EffectiveSortBy())
	}

	scoped := State{Source: &Source{Type: SourceFavorite, ID: 1}}
	if scoped.EffectiveSortBy() != SortSubscribeTime {
		t.Fatalf("expected subscribe_time default with source, got %q", scoped.EffectiveSortBy())
	}

	if plain.EffectiveSortOrder() != OrderDesc {
		t.Fatalf("expected desc default, got %q", plain.EffectiveSortOrder())
	}

	explicit := State{Source: &Source{Type: SourceFavorite, ID: 1}, SortBy: SortPublishTime, SortOrder: OrderAsc}
	if explicit.EffectiveSortBy() != SortPublishTime || explicit.EffectiveSortOrder() != OrderAsc {
		t.Fatal("explicit sort should win over defaults")
	}
}

func TestToParamsCarriesOnlySetFields(t *testing.T) {
	state := State{
		Query:  "concert",
		Source: &Source{Type: SourceSubmission, ID: 77},
		Status: StatusWaiting,
		// Pagination never appears in the batch filter body.
		Page:     4,
		PageSize: 30,
	}

	params := state.ToParams()
	if params.Submission == nil || *params.Submission != 77 {
		t.Fatalf("unexpected submission: %v", params.Submission)
	}
	if params.Collection != nil || params.Favorite != nil || params.WatchLater != nil {
		t.Fatalf("unexpected extra source fields: %#v", params)
	}
	if params.Query == nil || *params.Query != "concert" {
		t.Fatalf("unexpected query: %v", params.Query)
	}
	if params.StatusFilter == nil || *params.StatusFilter != "waiting" {
		t.Fatalf("unexpected status filter: %v", params.StatusFilter)
	}

	if empty := Default().ToParams(); empty != (Params{}) {
		t.Fatalf("default state should produce empty params, got %#v", empty)
	}
}

func TestGlobalStoreResetNotifiesSubscribers(t *testing.T) {
	t.Cleanup(Reset)

	Global.Set(State{Query: "stale"})

	var last State
	Global.Subscribe(func(s State) { last = s })
	if last.Query != "stale" {
		t.Fatalf("expected current value on subscribe, got %q", last.Query)
	}

	Reset()
	if last.Query != "" {
		t.Fatalf("expected reset notification, got %q", last.Query)
	}
}
