package action

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// Script is a declarative action sequence loaded from YAML:
//
//	name: login
//	steps:
//	  - {type: move, x: 300, y: 200, duration: 200ms}
//	  - {type: click}
//	  - {type: write, text: user}
//	  - {type: wait, duration: 100ms}
//
// Step fields not used by a type are ignored; unknown types and malformed
// durations fail decoding with an invalid-argument error.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one YAML-encoded action. Duration accepts Go duration syntax
// ("200ms", "1.5s").
type Step struct {
	Type     string   `yaml:"type"`
	X        int      `yaml:"x,omitempty"`
	Y        int      `yaml:"y,omitempty"`
	Button   string   `yaml:"button,omitempty"`
	Key      string   `yaml:"key,omitempty"`
	Keys     []string `yaml:"keys,omitempty"`
	Text     string   `yaml:"text,omitempty"`
	Duration string   `yaml:"duration,omitempty"`
}

// ParseScript decodes a YAML script and resolves every step into an
// Action, so a bad script fails before anything runs.
func ParseScript(data []byte) (*Script, []Action, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, nil, core.E(core.KindInvalidArgument, "script.parse", err)
	}
	actions, err := s.Actions()
	if err != nil {
		return nil, nil, err
	}
	return &s, actions, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, []Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// Actions resolves every step into its Action.
func (s *Script) Actions() ([]Action, error) {
	actions := make([]Action, 0, len(s.Steps))
	for i, step := range s.Steps {
		a, err := step.action()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func (s Step) action() (Action, error) {
	d, err := s.duration()
	if err != nil {
		return nil, err
	}

	var a Action
	switch s.Type {
	case "move":
		a = MouseMove{X: s.X, Y: s.Y, Duration: d}
	case "click":
		a = MouseClick{Button: core.Button(s.Button)}
	case "drag":
		a = MouseDrag{X: s.X, Y: s.Y, Duration: d}
	case "press":
		a = KeyPress{Key: core.Key(s.Key)}
	case "release":
		a = KeyRelease{Key: core.Key(s.Key)}
	case "write":
		a = KeyWrite{Text: s.Text}
	case "hotkey":
		keys := make([]core.Key, len(s.Keys))
		for i, k := range s.Keys {
			keys[i] = core.Key(k)
		}
		a = Hotkey{Keys: keys}
	case "wait":
		a = Wait{Duration: d}
	default:
		return nil, core.Errorf(core.KindInvalidArgument, "script.step", "unknown step type %q", s.Type)
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (s Step) duration() (time.Duration, error) {
	if s.Duration == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Duration)
	if err != nil {
		return 0, core.E(core.KindInvalidArgument, "script.step", err)
	}
	return d, nil
}
