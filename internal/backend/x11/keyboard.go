package x11

import (
	"time"
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/sdpkjc/guiguigui/pkg/core"
)

// Pause between synthesized key events while typing; some clients drop
// events arriving faster than a human could produce them.
const typeEventDelay = 10 * time.Millisecond

// specialKeysyms maps the module's key names to X keysym names.
var specialKeysyms = map[core.Key]string{
	core.KeyEnter:     "Return",
	"return":          "Return",
	core.KeyTab:       "Tab",
	core.KeySpace:     "space",
	core.KeyBackspace: "BackSpace",
	core.KeyDelete:    "Delete",
	core.KeyEscape:    "Escape",
	"escape":          "Escape",
	core.KeyShift:     "Shift_L",
	core.KeyCtrl:      "Control_L",
	"control":         "Control_L",
	core.KeyAlt:       "Alt_L",
	core.KeyCmd:       "Super_L",
	"super":           "Super_L",
	core.KeyUp:        "Up",
	core.KeyDown:      "Down",
	core.KeyLeft:      "Left",
	core.KeyRight:     "Right",
	core.KeyHome:      "Home",
	core.KeyEnd:       "End",
	core.KeyPageUp:    "Page_Up",
	core.KeyPageDown:  "Page_Down",
	"capslock":        "Caps_Lock",
	"f1":              "F1",
	"f2":              "F2",
	"f3":              "F3",
	"f4":              "F4",
	"f5":              "F5",
	"f6":              "F6",
	"f7":              "F7",
	"f8":              "F8",
	"f9":              "F9",
	"f10":             "F10",
	"f11":             "F11",
	"f12":             "F12",
}

// plainSyms are unshifted punctuation keysyms.
var plainSyms = map[rune]string{
	' ':  "space",
	',':  "comma",
	'.':  "period",
	'/':  "slash",
	';':  "semicolon",
	'\'': "apostrophe",
	'[':  "bracketleft",
	']':  "bracketright",
	'\\': "backslash",
	'-':  "minus",
	'=':  "equal",
	'`':  "grave",
	'\t': "Tab",
	'\n': "Return",
}

// shiftedSyms are characters produced with Shift on a US layout.
var shiftedSyms = map[rune]string{
	'!': "exclam",
	'@': "at",
	'#': "numbersign",
	'$': "dollar",
	'%': "percent",
	'^': "asciicircum",
	'&': "ampersand",
	'*': "asterisk",
	'(': "parenleft",
	')': "parenright",
	'_': "underscore",
	'+': "plus",
	'{': "braceleft",
	'}': "braceright",
	'|': "bar",
	':': "colon",
	'"': "quotedbl",
	'<': "less",
	'>': "greater",
	'?': "question",
	'~': "asciitilde",
}

// KeyDown presses a key that maps to a single unshifted keycode. A key
// reachable only through Shift ("U", "!") has no single-keycode hold and
// reports UnsupportedInput; TypeText covers those.
func (b *Backend) KeyDown(k core.Key) error {
	const op = "keyboard.key_down"
	kc, shifted, err := b.keycodeFor(k, op)
	if err != nil {
		return err
	}
	if shifted {
		return core.Errorf(core.KindUnsupportedInput, op, "key %q requires a shift chord", k)
	}
	return b.fakeInput(op, xproto.KeyPress, byte(kc), 0, 0)
}

func (b *Backend) KeyUp(k core.Key) error {
	const op = "keyboard.key_up"
	kc, shifted, err := b.keycodeFor(k, op)
	if err != nil {
		return err
	}
	if shifted {
		return core.Errorf(core.KindUnsupportedInput, op, "key %q requires a shift chord", k)
	}
	return b.fakeInput(op, xproto.KeyRelease, byte(kc), 0, 0)
}

// TypeText synthesizes key events per rune. X11 has no layout-independent
// Unicode injection; a rune with no keysym on the active layout fails the
// whole call with UnsupportedInput, leaving the rest untyped.
func (b *Backend) TypeText(text string) error {
	const op = "keyboard.type_text"
	for _, r := range text {
		kc, shifted, err := b.keycodeForRune(r, op)
		if err != nil {
			return err
		}
		if err := b.tap(op, kc, shifted); err != nil {
			return err
		}
		time.Sleep(typeEventDelay)
	}
	return nil
}

func (b *Backend) tap(op string, kc xproto.Keycode, shifted bool) error {
	if shifted {
		shift, _, err := b.keycodeFor(core.KeyShift, op)
		if err != nil {
			return err
		}
		if err := b.fakeInput(op, xproto.KeyPress, byte(shift), 0, 0); err != nil {
			return err
		}
		defer b.fakeInput(op, xproto.KeyRelease, byte(shift), 0, 0)
	}
	if err := b.fakeInput(op, xproto.KeyPress, byte(kc), 0, 0); err != nil {
		return err
	}
	return b.fakeInput(op, xproto.KeyRelease, byte(kc), 0, 0)
}

// keycodeFor resolves a key name to a keycode. Shifted is true when the
// key only exists behind the Shift modifier on the current layout.
func (b *Backend) keycodeFor(k core.Key, op string) (xproto.Keycode, bool, error) {
	if sym, ok := specialKeysyms[k]; ok {
		return b.lookup(sym, false, op)
	}
	runes := []rune(string(k))
	if len(runes) == 1 {
		return b.keycodeForRune(runes[0], op)
	}
	// Unknown multi-character name; try it as a raw keysym name.
	return b.lookup(string(k), false, op)
}

func (b *Backend) keycodeForRune(r rune, op string) (xproto.Keycode, bool, error) {
	switch {
	case unicode.IsUpper(r):
		return b.lookup(string(unicode.ToLower(r)), true, op)
	case plainSyms[r] != "":
		return b.lookup(plainSyms[r], false, op)
	case shiftedSyms[r] != "":
		return b.lookup(shiftedSyms[r], true, op)
	default:
		return b.lookup(string(r), false, op)
	}
}

func (b *Backend) lookup(sym string, shifted bool, op string) (xproto.Keycode, bool, error) {
	kcs := keybind.StrToKeycodes(b.xu, sym)
	if len(kcs) == 0 || kcs[0] == 0 {
		return 0, false, core.Errorf(core.KindUnsupportedInput, op, "no keycode for %q on active layout", sym)
	}
	return kcs[0], shifted, nil
}
