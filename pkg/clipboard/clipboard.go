// Package clipboard is the high-level clipboard surface. UTF-8 text is
// the only contractually supported content kind.
package clipboard

import (
	"github.com/sdpkjc/guiguigui/pkg/global"
)

// Get returns the clipboard contents. Ownership of the returned bytes
// transfers to the caller.
func Get() ([]byte, error) {
	b, err := global.Backend()
	if err != nil {
		return nil, err
	}
	return b.ClipboardGet()
}

// GetText returns the clipboard contents as a string.
func GetText() (string, error) {
	data, err := Get()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set replaces the clipboard contents.
func Set(data []byte) error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.ClipboardSet(data)
}

// SetText replaces the clipboard contents with text.
func SetText(text string) error {
	return Set([]byte(text))
}

// Clear empties the clipboard.
func Clear() error {
	b, err := global.Backend()
	if err != nil {
		return err
	}
	return b.ClipboardClear()
}

// HasText reports whether the clipboard holds non-empty text.
func HasText() (bool, error) {
	b, err := global.Backend()
	if err != nil {
		return false, err
	}
	return b.ClipboardHasText()
}
