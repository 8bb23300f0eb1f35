// Package statusdiff computes the sparse status updates the console submits
// to the backend. Videos and pages each carry a fixed vector of five task
// status codes; edits are expressed as (index, value) pairs so the backend
// applies only what actually changed.
package statusdiff

import "fmt"

// VectorLen is the number of task slots per video or page. It never changes
// at runtime.
const VectorLen = 5

// Status code semantics: 0 is untouched, 7 is completed, 1 through 6 count
// failed attempts.
const (
	ValueNotStarted uint32 = 0
	ValueCompleted  uint32 = 7
	MaxValue        uint32 = 7
)

// Vector is the per-task status of one video or one page.
type Vector [VectorLen]uint32

// Valid reports whether every slot holds a representable status code.
func (v Vector) Valid() bool {
	for _, value := range v {
		if value > MaxValue {
			return false
		}
	}
	return true
}

// ValueLabel names a single status code for display.
func ValueLabel(value uint32) string {
	switch {
	case value == ValueNotStarted:
		return "waiting"
	case value == ValueCompleted:
		return "done"
	case value <= MaxValue:
		return fmt.Sprintf("failed x%d", value)
	default:
		return fmt.Sprintf("invalid(%d)", value)
	}
}

// Update is a single sparse mutation against a status vector.
type Update struct {
	Index int    `json:"status_index"`
	Value uint32 `json:"status_value"`
}

// PageUpdate bundles one page's updates with its id. Only pages whose own
// diff is non-empty are ever bundled.
type PageUpdate struct {
	PageID  int64    `json:"page_id"`
	Updates []Update `json:"updates"`
}

func (u Update) validate() error {
	if u.Index < 0 || u.Index >= VectorLen {
		return fmt.Errorf("status index %d out of range [0,%d)", u.Index, VectorLen)
	}
	if u.Value > MaxValue {
		return fmt.Errorf("status value %d out of range [0,%d]", u.Value, MaxValue)
	}
	return nil
}
