package window

import (
	"testing"

	"github.com/sdpkjc/guiguigui/internal/backendtest"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/global"
)

func fakeDesktop(t *testing.T) *backendtest.Recorder {
	t.Helper()
	r := backendtest.New()
	r.Wins = []core.WindowHandle{
		{ID: "1", Title: "Mozilla Firefox", App: "firefox", PID: 100},
		{ID: "2", Title: "Terminal", App: "kitty", PID: 200},
		{ID: "3", Title: "firefox - downloads", App: "firefox", PID: 100},
	}
	r.ActiveWin = r.Wins[1]
	global.SetBackend(r)
	t.Cleanup(global.ResetBackend)
	return r
}

func TestFindByTitleIsCaseInsensitiveSubstring(t *testing.T) {
	fakeDesktop(t)
	got, err := Find(Criteria{Title: "FIREFOX"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected windows 1 and 3, got %v", got)
	}
}

func TestFindCombinesCriteria(t *testing.T) {
	fakeDesktop(t)
	got, err := Find(Criteria{App: "firefox", Title: "downloads"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected window 3, got %v", got)
	}
}

func TestFindByPID(t *testing.T) {
	fakeDesktop(t)
	got, err := Find(Criteria{PID: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected window 2, got %v", got)
	}
}

func TestFindNoMatchReturnsEmpty(t *testing.T) {
	fakeDesktop(t)
	got, err := Find(Criteria{Title: "no such window"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestActive(t *testing.T) {
	fakeDesktop(t)
	w, err := Active()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ID != "2" {
		t.Fatalf("expected active window 2, got %v", w)
	}
}

func TestMoveAndResizeRouteToBackend(t *testing.T) {
	r := fakeDesktop(t)
	w := r.Wins[0]
	if err := Move(w, 10, 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Resize(w, 800, 600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := r.Events()
	tail := events[len(events)-2:]
	if tail[0] != "move_window 1 10,20" || tail[1] != "resize_window 1 800x600" {
		t.Fatalf("expected move and resize events, got %v", events)
	}
}
