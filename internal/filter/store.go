package filter

import "bilictl/internal/store"

// Global is the process-wide filter state. Commands parse their flags into
// it and read the request parameters back out, so every consumer observes
// the same listing scope. Call Reset between logical sessions (tests do).
var Global = store.New(Default())

// Reset restores the global filter state to defaults.
func Reset() {
	Global.Reset()
}
