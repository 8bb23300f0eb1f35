package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bilictl/internal/filter"
	"bilictl/internal/statusdiff"
)

var videoTaskLabels = [statusdiff.VectorLen]string{
	"cover", "details", "upper avatar", "upper details", "page download",
}

var pageTaskLabels = [statusdiff.VectorLen]string{
	"cover", "content", "details", "danmaku", "subtitle",
}

func taskLabel(index int) string {
	if index >= 0 && index < statusdiff.VectorLen {
		return videoTaskLabels[index]
	}
	return fmt.Sprintf("task %d", index)
}

func pageTaskLabel(index int) string {
	if index >= 0 && index < statusdiff.VectorLen {
		return pageTaskLabels[index]
	}
	return fmt.Sprintf("task %d", index)
}

func validateTaskIndex(index int) error {
	if index < 0 || index >= statusdiff.VectorLen {
		return fmt.Errorf("task index %d out of range (0-%d)", index, statusdiff.VectorLen-1)
	}
	return nil
}

// parseSlotAssignment parses a "idx=value" task assignment. The value is
// either numeric (0-7) or one of the symbolic forms "reset" and "done".
func parseSlotAssignment(raw string) (int, uint32, error) {
	idxStr, valStr, ok := strings.Cut(strings.TrimSpace(raw), "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid task assignment %q (expected idx=value)", raw)
	}
	index, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid task index %q", idxStr)
	}
	if err := validateTaskIndex(index); err != nil {
		return 0, 0, err
	}
	value, err := parseSlotValue(valStr)
	if err != nil {
		return 0, 0, err
	}
	return index, value, nil
}

func parseSlotValue(raw string) (uint32, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "reset":
		return statusdiff.ValueNotStarted, nil
	case "done":
		return statusdiff.ValueCompleted, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value > uint64(statusdiff.MaxValue) {
		return 0, fmt.Errorf("invalid task value %q (0-%d, reset, or done)", raw, statusdiff.MaxValue)
	}
	return uint32(value), nil
}

// parsePageAssignment parses a "pageID:idx=value" assignment for the
// absolute-mode per-page edits.
func parsePageAssignment(raw string) (int64, int, uint32, error) {
	pageStr, rest, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid page assignment %q (expected pageID:idx=value)", raw)
	}
	pageID, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid page id %q", pageStr)
	}
	index, value, err := parseSlotAssignment(rest)
	if err != nil {
		return 0, 0, 0, err
	}
	return pageID, index, value, nil
}

// parseTriState maps an optional bool flag onto a nil-when-unset pointer.
func parseTriState(raw string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, nil
	case "true", "yes", "on":
		v := true
		return &v, nil
	case "false", "no", "off":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("invalid boolean %q (true or false)", raw)
}

// vectorSummary renders a vector as a compact slot list for table cells.
func vectorSummary(vector statusdiff.Vector) string {
	parts := make([]string, statusdiff.VectorLen)
	for i, value := range vector {
		switch {
		case value == statusdiff.ValueCompleted:
			parts[i] = "ok"
		case value == statusdiff.ValueNotStarted:
			parts[i] = "-"
		default:
			parts[i] = fmt.Sprintf("x%d", value)
		}
	}
	return strings.Join(parts, " ")
}

// sortByName orders rows by display name using the configured locale so
// mixed CJK and Latin names collate predictably.
func sortByName[T any](items []T, locale string, name func(T) string) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.SimplifiedChinese
	}
	collator := collate.New(tag)
	sort.SliceStable(items, func(i, j int) bool {
		return collator.CompareString(name(items[i]), name(items[j])) < 0
	})
}

// filterFlags binds the shared listing filter flags to a command.
type filterFlags struct {
	query      string
	favorite   int64
	collection int64
	submission int64
	watchLater int64
	status     string
	page       int
	pageSize   int
	sortBy     string
	sortOrder  string
}

func (f *filterFlags) register(cmd *cobra.Command, withPaging bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.query, "query", "q", "", "Filter by title substring")
	flags.Int64Var(&f.favorite, "favorite", 0, "Filter by favorite source id")
	flags.Int64Var(&f.collection, "collection", 0, "Filter by collection source id")
	flags.Int64Var(&f.submission, "submission", 0, "Filter by submission source id")
	flags.Int64Var(&f.watchLater, "watch-later", 0, "Filter by watch-later source id")
	flags.StringVar(&f.status, "status", "", "Filter by status (failed, succeeded, waiting, skipped, paid)")
	if withPaging {
		flags.IntVar(&f.page, "page", 0, "Page number (0-based)")
		flags.IntVar(&f.pageSize, "page-size", 0, "Rows per page")
		flags.StringVar(&f.sortBy, "sort-by", "", "Sort column (download_time, subscribe_time, publish_time)")
		flags.StringVar(&f.sortOrder, "sort-order", "", "Sort direction (asc, desc)")
	}
}

func (f *filterFlags) state() (filter.State, error) {
	state := filter.State{
		Query:    strings.TrimSpace(f.query),
		Page:     f.page,
		PageSize: f.pageSize,
	}

	sources := 0
	assign := func(kind filter.SourceType, id int64) {
		if id != 0 {
			sources++
			state.Source = &filter.Source{Type: kind, ID: id}
		}
	}
	assign(filter.SourceFavorite, f.favorite)
	assign(filter.SourceCollection, f.collection)
	assign(filter.SourceSubmission, f.submission)
	assign(filter.SourceWatchLater, f.watchLater)
	if sources > 1 {
		return filter.State{}, fmt.Errorf("specify at most one source filter")
	}

	if f.status != "" {
		status := filter.ParseStatusFilter(f.status)
		if status == filter.StatusNone {
			return filter.State{}, fmt.Errorf("invalid status %q", f.status)
		}
		state.Status = status
	}
	if f.sortBy != "" {
		sortBy := filter.ParseSortBy(f.sortBy)
		if sortBy == filter.SortUnset {
			return filter.State{}, fmt.Errorf("invalid sort column %q", f.sortBy)
		}
		state.SortBy = sortBy
	}
	if f.sortOrder != "" {
		order := filter.ParseSortOrder(f.sortOrder)
		if order == filter.OrderUnset {
			return filter.State{}, fmt.Errorf("invalid sort direction %q", f.sortOrder)
		}
		state.SortOrder = order
	}
	return state, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
