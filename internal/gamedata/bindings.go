package gamedata

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"
)

// Action is what a bound key asks the game to do.
type Action string

const (
	ActionNone       Action = ""
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionMoveLeft   Action = "move_left"
	ActionMoveRight  Action = "move_right"
	ActionQuit       Action = "quit"
	ActionRegenerate Action = "regenerate"
)

// Valid reports whether a is a known, non-empty action.
func (a Action) Valid() bool {
	switch a {
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight, ActionQuit, ActionRegenerate:
		return true
	default:
		return false
	}
}

// namedKeys maps key names in keys.json to tcell keys.
var namedKeys = map[string]tcell.Key{
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
}

// BindingDef binds one key to an action, loaded from JSON.
type BindingDef struct {
	Key    string `json:"key"`    // Single character, "space", or a named key like "escape"
	Action Action `json:"action"` // Action identifier (e.g., "move_up")
}

// BindingsFile represents the structure of keys.json.
type BindingsFile struct {
	Bindings []BindingDef `json:"bindings"`
}

// LoadBindings loads key binding definitions from the embedded keys.json file.
func LoadBindings() ([]BindingDef, error) {
	file, err := Load[BindingsFile]("keys.json")
	if err != nil {
		return nil, err
	}
	return file.Bindings, nil
}

// KeyRegistry resolves key events to actions.
// Character bindings are case-insensitive.
type KeyRegistry struct {
	runes map[rune]Action
	keys  map[tcell.Key]Action
}

// NewKeyRegistry builds a registry, rejecting unknown actions, unknown key
// names and keys bound twice.
func NewKeyRegistry(defs []BindingDef) (*KeyRegistry, error) {
	r := &KeyRegistry{
		runes: make(map[rune]Action),
		keys:  make(map[tcell.Key]Action),
	}
	seen := mapset.New[string]()

	for _, def := range defs {
		if !def.Action.Valid() {
			return nil, fmt.Errorf("unknown action %q for key %q", def.Action, def.Key)
		}

		name := strings.ToLower(strings.TrimSpace(def.Key))
		if name == "space" {
			name = " "
		}
		if seen.Has(name) {
			return nil, fmt.Errorf("key %q bound more than once", def.Key)
		}
		seen.Put(name)

		if key, ok := namedKeys[name]; ok {
			r.keys[key] = def.Action
			continue
		}
		ch, size := utf8.DecodeRuneInString(name)
		if ch == utf8.RuneError || size != len(name) {
			return nil, fmt.Errorf("unknown key name %q", def.Key)
		}
		r.runes[ch] = def.Action
	}

	return r, nil
}

// LoadKeyRegistry loads and creates a registry from the embedded keys.json.
func LoadKeyRegistry() (*KeyRegistry, error) {
	defs, err := LoadBindings()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no bindings loaded from keys.json")
	}
	return NewKeyRegistry(defs)
}

// MustLoadKeyRegistry loads a registry, panicking on error.
func MustLoadKeyRegistry() *KeyRegistry {
	registry, err := LoadKeyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Lookup returns the action bound to the key event, or ActionNone.
func (r *KeyRegistry) Lookup(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		return r.runes[unicode.ToLower(ev.Rune())]
	}
	return r.keys[ev.Key()]
}

// Count returns the number of bound keys.
func (r *KeyRegistry) Count() int {
	return len(r.runes) + len(r.keys)
}
