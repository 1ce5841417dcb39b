// Package clip is the clipboard implementation shared by every backend,
// built on atotto/clipboard (native pasteboard on macOS and Windows,
// xclip/xsel on Linux). UTF-8 text is the only supported content kind.
package clip

import (
	"github.com/atotto/clipboard"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// Board satisfies core.Clipboard. Backends embed it.
type Board struct{}

func (Board) ClipboardGet() ([]byte, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, core.E(core.KindPlatformError, "clipboard.get", err)
	}
	return []byte(text), nil
}

func (Board) ClipboardSet(b []byte) error {
	if err := clipboard.WriteAll(string(b)); err != nil {
		return core.E(core.KindPlatformError, "clipboard.set", err)
	}
	return nil
}

func (Board) ClipboardClear() error {
	if err := clipboard.WriteAll(""); err != nil {
		return core.E(core.KindPlatformError, "clipboard.clear", err)
	}
	return nil
}

func (Board) ClipboardHasText() (bool, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return false, core.E(core.KindPlatformError, "clipboard.has_text", err)
	}
	return len(text) > 0, nil
}

var _ core.Clipboard = Board{}
