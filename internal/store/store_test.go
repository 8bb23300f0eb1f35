package store

import "testing"

func TestSubscribeReceivesCurrentAndSubsequentValues(t *testing.T) {
	s := New(1)

	var seen []int
	cancel := s.Subscribe(func(v int) { seen = append(seen, v) })

	s.Set(2)
	s.Update(func(v int) int { return v + 10 })

	cancel()
	s.Set(99)

	want := []int{1, 2, 12}
	if len(seen) != len(want) {
		t.Fatalf("got %v want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("got %v want %v", seen, want)
		}
	}
	if s.Get() != 99 {
		t.Fatalf("unexpected final value: %d", s.Get())
	}
}

func TestResetRestoresInitialAndNotifies(t *testing.T) {
	type state struct{ Query string }
	s := New(state{Query: ""})
	s.Set(state{Query: "drift"})

	var last state
	s.Subscribe(func(v state) { last = v })

	s.Reset()
	if last.Query != "" {
		t.Fatalf("expected reset to initial, got %q", last.Query)
	}
	if s.Get() != (state{}) {
		t.Fatalf("unexpected value after reset: %#v", s.Get())
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := New(0)
	calls := 0
	cancel := s.Subscribe(func(int) { calls++ })
	cancel()
	cancel()
	s.Set(1)
	if calls != 1 {
		t.Fatalf("expected only the initial call, got %d", calls)
	}
}
