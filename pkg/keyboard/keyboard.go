// Package keyboard is the high-level key-injection surface.
package keyboard

import (
	"github.com/sdpkjc/guiguigui/pkg/action"
	"github.com/sdpkjc/guiguigui/pkg/core"
	"github.com/sdpkjc/guiguigui/pkg/global"
)

// Press pushes a key down without releasing it.
func Press(k core.Key) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.KeyDown(k)
}

// Release releases a previously pressed key.
func Release(k core.Key) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.KeyUp(k)
}

// Tap presses and releases a key.
func Tap(k core.Key) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	if err := b.KeyDown(k); err != nil {
		return err
	}
	return b.KeyUp(k)
}

// Type writes text as a sequence of per-grapheme key events, falling back
// to Unicode injection for characters missing from the active layout.
func Type(text string) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return action.KeyWrite{Text: text}.Execute(b)
}

// Hotkey presses keys in order and releases them in reverse, so
// modifiers listed first stay held across the chord.
func Hotkey(keys ...core.Key) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return action.Hotkey{Keys: keys}.Execute(b)
}
