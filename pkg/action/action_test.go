package action

import (
	"strings"
	"testing"
	"time"

	"github.com/sdpkjc/guiguigui/internal/backendtest"
	"github.com/sdpkjc/guiguigui/pkg/core"
)

func TestMouseMoveInstantIssuesOneCall(t *testing.T) {
	b := backendtest.New()
	if err := (MouseMove{X: 300, Y: 200}).Execute(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := b.Events()
	if len(events) != 1 || events[0] != "move_to 300,200" {
		t.Fatalf("expected exactly one position-set call, got %v", events)
	}
}

func TestMouseMoveTimedInterpolates(t *testing.T) {
	b := backendtest.New()
	if err := (MouseMove{X: 120, Y: 60, Duration: 100 * time.Millisecond}).Execute(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var moves []string
	for _, ev := range b.Events() {
		if strings.HasPrefix(ev, "move_to ") {
			moves = append(moves, ev)
		}
	}
	if len(moves) < 2 {
		t.Fatalf("expected more than one intermediate call, got %v", moves)
	}
	if moves[len(moves)-1] != "move_to 120,60" {
		t.Fatalf("final position must equal target, got %s", moves[len(moves)-1])
	}
}

func TestMouseMoveNegativeDuration(t *testing.T) {
	b := backendtest.New()
	err := (MouseMove{X: 1, Y: 1, Duration: -time.Second}).Execute(b)
	if !core.IsKind(err, core.KindInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if len(b.Events()) != 0 {
		t.Fatalf("nothing should reach the backend, got %v", b.Events())
	}
}

func TestMouseClickDefaultsLeft(t *testing.T) {
	b := backendtest.New()
	if err := (MouseClick{}).Execute(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"button_down left", "button_up left"}
	got := b.Events()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMouseDragHoldsButtonAcrossGlide(t *testing.T) {
	b := backendtest.New()
	if err := (MouseDrag{X: 50, Y: 50, Duration: 50 * time.Millisecond}).Execute(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := b.Events()
	if events[0] != "button_down left" {
		t.Fatalf("drag must press before moving, got %v", events[0])
	}
	if events[len(events)-1] != "button_up left" {
		t.Fatalf("drag must release last, got %v", events[len(events)-1])
	}
}

func TestKeyWriteDecomposesPerGrapheme(t *testing.T) {
	b := backendtest.New()
	if err := (KeyWrite{Text: "user"}).Execute(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"key_down u", "key_up u",
		"key_down s", "key_up s",
		"key_down e", "key_up e",
		"key_down r", "key_up r",
	}
	got := b.Events()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestKeyWriteUnmappedFallsBackToUnicodeInjection(t *testing.T) {
	b := backendtest.New()
	b.UnmappedKeys = map[core.Key]bool{"é": true}
	if err := (KeyWrite{Text: "é"}).Execute(b); err != nil {
		t.Fatalf("expected unicode fallback to succeed, got %v", err)
	}
	events := b.Events()
	if events[len(events)-1] != "type_text é" {
		t.Fatalf("expected type_text fallback, got %v", events)
	}
}

func TestKeyWriteFailsFastWhenFallbackFails(t *testing.T) {
	b := backendtest.New()
	b.UnmappedKeys = map[core.Key]bool{"☃": true}
	b.Errs = map[string]error{
		"type_text": core.Errorf(core.KindUnsupportedInput, "keyboard.type_text", "no unicode injection"),
	}
	err := (KeyWrite{Text: "a☃z"}).Execute(b)
	if !core.IsKind(err, core.KindUnsupportedInput) {
		t.Fatalf("expected unsupported input, got %v", err)
	}
	for _, ev := range b.Events() {
		if ev == "key_down z" {
			t.Fatalf("text after the failing grapheme must not be typed: %v", b.Events())
		}
	}
}

func TestHotkeyReleasesInReverseOrder(t *testing.T) {
	b := backendtest.New()
	if err := (Hotkey{Keys: []core.Key{core.KeyCtrl, core.KeyShift, "t"}}).Execute(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"key_down ctrl", "key_down shift", "key_down t",
		"key_up t", "key_up shift", "key_up ctrl",
	}
	got := b.Events()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestHotkeyEmptyIsInvalid(t *testing.T) {
	err := (Hotkey{}).Execute(backendtest.New())
	if !core.IsKind(err, core.KindInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestWaitSuspendsWithoutTouchingBackend(t *testing.T) {
	b := backendtest.New()
	start := time.Now()
	if err := (Wait{Duration: 50 * time.Millisecond}).Execute(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Fatalf("wait returned after %v, expected at least 50ms", elapsed)
	}
	if len(b.Events()) != 0 {
		t.Fatalf("wait must not touch the backend, got %v", b.Events())
	}
}

func TestWaitNegativeIsInvalid(t *testing.T) {
	err := (Wait{Duration: -time.Millisecond}).Execute(backendtest.New())
	if !core.IsKind(err, core.KindInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestActionsDoNotReclassifyBackendErrors(t *testing.T) {
	b := backendtest.New()
	b.Errs = map[string]error{
		"button_down": core.Errorf(core.KindPermissionDenied, "pointer.button_down", "accessibility not granted"),
	}
	err := (MouseClick{}).Execute(b)
	if !core.IsKind(err, core.KindPermissionDenied) {
		t.Fatalf("expected permission denied to pass through, got %v", err)
	}
}

func TestPathIsBoundedAndRestartable(t *testing.T) {
	p := newPath(core.Point{}, core.Point{X: 100, Y: 0}, time.Second)
	var count int
	var last core.Point
	for {
		pt, ok := p.next()
		if !ok {
			break
		}
		last = pt
		count++
		if count > 10*stepsPerSecond {
			t.Fatalf("path did not terminate")
		}
	}
	if last.X != 100 {
		t.Fatalf("expected final point at target, got %v", last)
	}
	p.reset()
	if _, ok := p.next(); !ok {
		t.Fatalf("reset path should yield points again")
	}
}
