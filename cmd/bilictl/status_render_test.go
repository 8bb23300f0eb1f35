package main

import (
	"strings"
	"testing"

	"bilictl/internal/statusdiff"
)

func TestRenderStatusLinePlain(t *testing.T) {
	line := renderStatusLine("cover", statusOK, "done", false)
	requireContains(t, line, "cover:")
	requireContains(t, line, "[OK] done")
	if strings.Contains(line, ansiGreen) {
		t.Fatal("plain output must not carry ANSI codes")
	}
}

func TestRenderStatusLineColorized(t *testing.T) {
	line := renderStatusLine("details", statusError, "failed x2", true)
	if !strings.HasPrefix(line, ansiRed) || !strings.HasSuffix(line, ansiReset) {
		t.Fatalf("expected red wrapping, got %q", line)
	}
}

func TestTaskStatusKind(t *testing.T) {
	if got := taskStatusKind(statusdiff.ValueCompleted); got != statusOK {
		t.Fatalf("completed = %v, want OK", got)
	}
	if got := taskStatusKind(statusdiff.ValueNotStarted); got != statusInfo {
		t.Fatalf("not started = %v, want info", got)
	}
	if got := taskStatusKind(4); got != statusError {
		t.Fatalf("failure count = %v, want error", got)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Pages ", false)
	if len(lines) != 2 {
		t.Fatalf("expected header and rule, got %v", lines)
	}
	if lines[0] != "== Pages ==" {
		t.Fatalf("header = %q", lines[0])
	}
	if len(lines[1]) != len(lines[0]) {
		t.Fatalf("rule length %d != header length %d", len(lines[1]), len(lines[0]))
	}
}
