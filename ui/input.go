package ui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ActionKind tags an Action.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionRedraw
	ActionResize
	ActionQuit
	ActionCustom
)

// Action is the result of handling input. The zero value is no action.
type Action struct {
	Kind ActionKind
	Dim  Dim    // new screen size, for ActionResize
	Name string // application action, for ActionCustom
}

func Redraw() Action            { return Action{Kind: ActionRedraw} }
func Resize(d Dim) Action       { return Action{Kind: ActionResize, Dim: d} }
func Quit() Action              { return Action{Kind: ActionQuit} }
func Custom(name string) Action { return Action{Kind: ActionCustom, Name: name} }

// IsNone reports whether a is no action.
func (a Action) IsNone() bool { return a.Kind == ActionNone }

// Or returns a, or b if a is no action.
func (a Action) Or(b Action) Action {
	if a.IsNone() {
		return b
	}
	return a
}

func (a Action) String() string {
	switch a.Kind {
	case ActionRedraw:
		return "redraw"
	case ActionResize:
		return fmt.Sprintf("resize(%dx%d)", a.Dim.Width, a.Dim.Height)
	case ActionQuit:
		return "quit"
	case ActionCustom:
		return a.Name
	default:
		return "none"
	}
}

// ModKeys is a set of modifier keys.
type ModKeys uint8

const (
	ModShift ModKeys = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

func modKeys(m tcell.ModMask) ModKeys {
	var mk ModKeys
	if m&tcell.ModShift != 0 {
		mk |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mk |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mk |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mk |= ModMeta
	}
	return mk
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// MouseKind tags a MouseEvent.
type MouseKind int

const (
	ButtonDown MouseKind = iota
	ButtonUp
	Drag // with MouseNone: motion without a button held
	ScrollUp
	ScrollDown
)

// MouseEvent is a decoded mouse action.
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButton
}

// FocusEvent is a focus notification sent during mouse dispatch.
type FocusEvent int

const (
	FocusOffer FocusEvent = iota
	FocusTake
	FocusHoverInside
	FocusHoverOutside
)

// Key is a key without modifiers: a special key code, or KeyRune with a rune.
type Key struct {
	Code tcell.Key
	Rune rune
}

type binding struct {
	key  Key
	mods ModKeys
}

// KeyMap maps keys to actions.
type KeyMap struct {
	m map[binding]Action
}

// NewKeyMap returns an empty key map.
func NewKeyMap() *KeyMap {
	return &KeyMap{m: make(map[binding]Action)}
}

// DefaultKeyMap quits on Esc or Ctrl+Q and redraws on Ctrl+L.
func DefaultKeyMap() *KeyMap {
	km := NewKeyMap()
	km.Bind(Key{Code: tcell.KeyEscape}, 0, Quit())
	km.Bind(Key{Code: tcell.KeyCtrlQ}, ModCtrl, Quit())
	km.Bind(Key{Code: tcell.KeyCtrlL}, ModCtrl, Redraw())
	return km
}

// Bind maps a key with modifiers to an action.
func (km *KeyMap) Bind(k Key, mods ModKeys, a Action) {
	km.m[normalize(k, mods)] = a
}

// Lookup returns the action bound to a key, or no action.
func (km *KeyMap) Lookup(k Key, mods ModKeys) Action {
	return km.m[normalize(k, mods)]
}

// Len returns the number of bindings.
func (km *KeyMap) Len() int { return len(km.m) }

func normalize(k Key, mods ModKeys) binding {
	if k.Code != tcell.KeyRune {
		k.Rune = 0
	} else {
		// the rune tells upper from lower case, shift only matters for
		// bindings written as shift+letter
		if mods&ModShift != 0 {
			k.Rune = unicode.ToUpper(k.Rune)
		}
		mods &^= ModShift
	}
	if k.Code >= tcell.KeyCtrlA && k.Code <= tcell.KeyCtrlZ {
		mods |= ModCtrl
	}
	return binding{key: k, mods: mods}
}

var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEscape
	m["return"] = tcell.KeyEnter
	return m
}()

// ParseKey parses key names such as "q", "Q", "esc", "f1", "ctrl+q" or "alt+x".
func ParseKey(s string) (Key, ModKeys, error) {
	const op Op = "ui.ParseKey"
	rest := strings.TrimSpace(s)
	var mods ModKeys
	for {
		prefix, tail, ok := strings.Cut(rest, "+")
		if !ok || tail == "" {
			break
		}
		switch strings.ToLower(prefix) {
		case "shift":
			mods |= ModShift
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "meta":
			mods |= ModMeta
		default:
			return Key{}, 0, E(op, KindConfig, ErrUnknownKey, fmt.Sprintf("modifier in %q", s))
		}
		rest = tail
	}

	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		if lr := unicode.ToLower(r); mods&ModCtrl != 0 && lr >= 'a' && lr <= 'z' {
			return Key{Code: tcell.KeyCtrlA + tcell.Key(lr-'a')}, mods, nil
		}
		return Key{Code: tcell.KeyRune, Rune: r}, mods, nil
	}
	name := strings.ToLower(rest)
	if name == "space" {
		return Key{Code: tcell.KeyRune, Rune: ' '}, mods, nil
	}
	if code, ok := keyNames[name]; ok {
		return Key{Code: code}, mods, nil
	}
	return Key{}, 0, E(op, KindConfig, ErrUnknownKey, fmt.Sprintf("%q", s))
}

// ActionByName maps "quit" and "redraw" to their actions and any other name
// to an application action.
func ActionByName(name string) Action {
	switch strings.ToLower(name) {
	case "quit":
		return Quit()
	case "redraw":
		return Redraw()
	case "", "none":
		return Action{}
	default:
		return Custom(name)
	}
}

// ParseKeyMap builds a key map from key names to action names.
func ParseKeyMap(bindings map[string]string) (*KeyMap, error) {
	km := NewKeyMap()
	for key, action := range bindings {
		k, mods, err := ParseKey(key)
		if err != nil {
			return nil, err
		}
		km.Bind(k, mods, ActionByName(action))
	}
	return km, nil
}

// event is a decoded input event.
type event struct {
	kind  eventKind
	key   Key
	mods  ModKeys
	mouse MouseEvent
	pos   Pos
	dim   Dim
}

type eventKind int

const (
	eventIgnored eventKind = iota
	eventKey
	eventMouse
	eventResize
)

// translator decodes terminal events. Mouse button transitions are derived
// from the buttons held in consecutive events.
type translator struct {
	buttons tcell.ButtonMask
}

var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  MouseButton
}{
	{tcell.Button1, MouseLeft},
	{tcell.Button3, MouseMiddle},
	{tcell.Button2, MouseRight},
}

func (t *translator) translate(ev tcell.Event) (event, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return event{
			kind: eventKey,
			key:  Key{Code: ev.Key(), Rune: ev.Rune()},
			mods: modKeys(ev.Modifiers()),
		}, nil
	case *tcell.EventMouse:
		x, y := ev.Position()
		return event{
			kind:  eventMouse,
			mouse: t.mouse(ev.Buttons()),
			mods:  modKeys(ev.Modifiers()),
			pos:   Pos{Col: clampInt(x), Row: clampInt(y)},
		}, nil
	case *tcell.EventResize:
		w, h := ev.Size()
		return event{kind: eventResize, dim: Dim{Width: clampInt(w), Height: clampInt(h)}}, nil
	case *tcell.EventError:
		return event{}, ev
	default:
		return event{}, nil
	}
}

func (t *translator) mouse(b tcell.ButtonMask) MouseEvent {
	switch {
	case b&tcell.WheelUp != 0:
		return MouseEvent{Kind: ScrollUp}
	case b&tcell.WheelDown != 0:
		return MouseEvent{Kind: ScrollDown}
	}
	prev := t.buttons
	held := b & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	t.buttons = held
	for _, mb := range mouseButtons {
		if held&mb.mask != 0 && prev&mb.mask == 0 {
			return MouseEvent{Kind: ButtonDown, Button: mb.btn}
		}
	}
	for _, mb := range mouseButtons {
		if prev&mb.mask != 0 && held&mb.mask == 0 {
			return MouseEvent{Kind: ButtonUp, Button: mb.btn}
		}
	}
	for _, mb := range mouseButtons {
		if held&mb.mask != 0 {
			return MouseEvent{Kind: Drag, Button: mb.btn}
		}
	}
	return MouseEvent{Kind: Drag, Button: MouseNone}
}
