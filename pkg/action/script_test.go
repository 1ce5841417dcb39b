package action

import (
	"testing"
	"time"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

const loginScript = `
name: login
steps:
  - {type: move, x: 300, y: 200, duration: 200ms}
  - {type: click}
  - {type: write, text: user}
  - {type: wait, duration: 100ms}
  - {type: hotkey, keys: [ctrl, a]}
`

func TestParseScript(t *testing.T) {
	s, actions, err := ParseScript([]byte(loginScript))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "login" {
		t.Fatalf("expected name login, got %q", s.Name)
	}
	if len(actions) != 5 {
		t.Fatalf("expected 5 actions, got %d", len(actions))
	}

	mv, ok := actions[0].(MouseMove)
	if !ok {
		t.Fatalf("step 0 should be MouseMove, got %T", actions[0])
	}
	if mv.X != 300 || mv.Y != 200 || mv.Duration != 200*time.Millisecond {
		t.Fatalf("unexpected move: %+v", mv)
	}

	hk, ok := actions[4].(Hotkey)
	if !ok {
		t.Fatalf("step 4 should be Hotkey, got %T", actions[4])
	}
	if len(hk.Keys) != 2 || hk.Keys[0] != core.KeyCtrl || hk.Keys[1] != "a" {
		t.Fatalf("unexpected hotkey: %+v", hk)
	}
}

func TestParseScriptUnknownType(t *testing.T) {
	_, _, err := ParseScript([]byte("steps:\n  - {type: teleport}\n"))
	if !core.IsKind(err, core.KindInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParseScriptBadDuration(t *testing.T) {
	_, _, err := ParseScript([]byte("steps:\n  - {type: wait, duration: quickly}\n"))
	if !core.IsKind(err, core.KindInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParseScriptNegativeDuration(t *testing.T) {
	_, _, err := ParseScript([]byte("steps:\n  - {type: move, x: 1, y: 1, duration: -5s}\n"))
	if !core.IsKind(err, core.KindInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
