package ui

import (
	"strings"
	"testing"

	"sable/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	files := []string{"a.sb", "b.sb", "c.sb"}
	m := NewProgressModel("check", files, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.sb", Stage: driver.StageCheck, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "b.sb", Stage: driver.StageCheck, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "c.sb", Stage: driver.StageCache, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "unknown.sb", Stage: driver.StageCheck, Status: driver.StatusDone})

	want := []string{"checking", "error", "cached"}
	for i, item := range m.items {
		if item.status != want[i] {
			t.Errorf("%s: status %q, want %q", item.path, item.status, want[i])
		}
	}
	if m.failed != 1 {
		t.Errorf("failed = %d", m.failed)
	}
	if got := m.percent(); got < 0.83 || got > 0.84 {
		t.Errorf("percent = %v, want 2.5/3", got)
	}

	m.Update(doneMsg{})
	view := m.View()
	if !strings.Contains(view, "done: check (1 of 3 failed)") {
		t.Errorf("view header missing:\n%s", view)
	}
}

func TestTruncateUsesDisplayWidth(t *testing.T) {
	if got := truncate("short.sb", 20); got != "short.sb" {
		t.Errorf("got %q", got)
	}
	got := truncate("日本語のとても長いファイル名.sb", 10)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis, got %q", got)
	}
	if truncate("abcdef", 2) != "ab" {
		t.Errorf("narrow truncate = %q", truncate("abcdef", 2))
	}
}
