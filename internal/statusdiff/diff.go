package statusdiff

import (
	"errors"
	"sort"
)

// ErrNoChanges reports that an edit produced nothing to submit. Callers
// treat it as an informational guard, not a failure.
var ErrNoChanges = errors.New("no changes to submit")

// Diff computes the absolute-mode diff between an original vector and a
// working copy: every index whose value differs, in index order.
func Diff(original, working Vector) []Update {
	var updates []Update
	for i := 0; i < VectorLen; i++ {
		if working[i] != original[i] {
			updates = append(updates, Update{Index: i, Value: working[i]})
		}
	}
	return updates
}

// DiffBool compares a boolean flag the same way: nil when unchanged,
// otherwise the new value.
func DiffBool(original, working bool) *bool {
	if original == working {
		return nil
	}
	return &working
}

// DiffPages diffs each page independently against its original and bundles
// a page only when its own diff is non-empty. Pages present in only one of
// the maps are ignored; results are ordered by page id.
func DiffPages(original, working map[int64]Vector) []PageUpdate {
	var bundles []PageUpdate
	for pageID, workingVec := range working {
		originalVec, ok := original[pageID]
		if !ok {
			continue
		}
		if updates := Diff(originalVec, workingVec); len(updates) > 0 {
			bundles = append(bundles, PageUpdate{PageID: pageID, Updates: updates})
		}
	}
	sort.Slice(bundles, func(i, j int) bool { return bundles[i].PageID < bundles[j].PageID })
	return bundles
}

// Submission is the complete update set for one video edit.
type Submission struct {
	VideoUpdates   []Update
	PageUpdates    []PageUpdate
	ShouldDownload *bool
	Paid           *bool
}

// Empty reports whether the submission carries no updates at all.
func (s Submission) Empty() bool {
	return len(s.VideoUpdates) == 0 && len(s.PageUpdates) == 0 &&
		s.ShouldDownload == nil && s.Paid == nil
}

// Validate rejects empty submissions with ErrNoChanges and bounds-checks
// every update so malformed edits never reach the network.
func (s Submission) Validate() error {
	if s.Empty() {
		return ErrNoChanges
	}
	for _, update := range s.VideoUpdates {
		if err := update.validate(); err != nil {
			return err
		}
	}
	for _, page := range s.PageUpdates {
		for _, update := range page.Updates {
			if err := update.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sparse is the batch-edit form: each slot is tri-state, either unset or
// explicitly assigned. There is no original to diff against, so every set
// slot is emitted unconditionally.
type Sparse struct {
	Video          [VectorLen]*uint32
	Page           [VectorLen]*uint32
	ShouldDownload *bool
	Paid           *bool
}

// SetVideo assigns a video task slot.
func (s *Sparse) SetVideo(index int, value uint32) {
	if index >= 0 && index < VectorLen {
		v := value
		s.Video[index] = &v
	}
}

// SetPage assigns a page task slot.
func (s *Sparse) SetPage(index int, value uint32) {
	if index >= 0 && index < VectorLen {
		v := value
		s.Page[index] = &v
	}
}

// VideoUpdates returns the explicitly-set video slots in index order.
func (s Sparse) VideoUpdates() []Update {
	return collect(s.Video)
}

// PageUpdates returns the explicitly-set page slots in index order.
func (s Sparse) PageUpdates() []Update {
	return collect(s.Page)
}

// Empty reports whether nothing was explicitly set.
func (s Sparse) Empty() bool {
	return len(s.VideoUpdates()) == 0 && len(s.PageUpdates()) == 0 &&
		s.ShouldDownload == nil && s.Paid == nil
}

// Validate rejects an all-unset batch with ErrNoChanges and bounds-checks
// the assigned values.
func (s Sparse) Validate() error {
	if s.Empty() {
		return ErrNoChanges
	}
	for _, update := range append(s.VideoUpdates(), s.PageUpdates()...) {
		if err := update.validate(); err != nil {
			return err
		}
	}
	return nil
}

func collect(slots [VectorLen]*uint32) []Update {
	var updates []Update
	for i, value := range slots {
		if value != nil {
			updates = append(updates, Update{Index: i, Value: *value})
		}
	}
	return updates
}
