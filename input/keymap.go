package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/components"
)

// KeyMap maps special keys and runes to snake directions
type KeyMap struct {
	keys  map[tcell.Key]components.Direction
	runes map[rune]components.Direction
}

// keysByName is the reverse of tcell.KeyNames, lower-cased
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		if k == tcell.KeyRune {
			continue
		}
		m[strings.ToLower(name)] = k
	}
	return m
}()

// DefaultKeyMap binds exactly the four arrow keys
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		keys: map[tcell.Key]components.Direction{
			tcell.KeyLeft:  components.DirLeft,
			tcell.KeyRight: components.DirRight,
			tcell.KeyUp:    components.DirUp,
			tcell.KeyDown:  components.DirDown,
		},
		runes: make(map[rune]components.Direction),
	}
}

// ParseBindings extends the default map with direction → key name lists,
// e.g. {"up": ["k", "w"], "left": ["h", "a"]}. Key names are tcell names
// ("Up", "Home", "Ctrl-P") or single characters.
func ParseBindings(bindings map[string][]string) (*KeyMap, error) {
	km := DefaultKeyMap()

	// Deterministic error reporting
	dirs := make([]string, 0, len(bindings))
	for d := range bindings {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	for _, dirName := range dirs {
		dir, err := components.ParseDirection(dirName)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		for _, name := range bindings[dirName] {
			if err := km.Bind(name, dir); err != nil {
				return nil, fmt.Errorf("keys.%s: %w", dirName, err)
			}
		}
	}
	return km, nil
}

// Bind maps a key name to a direction
func (km *KeyMap) Bind(name string, dir components.Direction) error {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if isQuitRune(r) {
			return fmt.Errorf("key %q is reserved for quit", name)
		}
		km.runes[r] = dir
		return nil
	}

	k, ok := keysByName[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown key name %q", name)
	}
	if isQuitKey(k) {
		return fmt.Errorf("key %q is reserved for quit", name)
	}
	km.keys[k] = dir
	return nil
}

// Lookup returns the direction bound to a key event
func (km *KeyMap) Lookup(ev *tcell.EventKey) (components.Direction, bool) {
	if ev.Key() == tcell.KeyRune {
		d, ok := km.runes[ev.Rune()]
		return d, ok
	}
	d, ok := km.keys[ev.Key()]
	return d, ok
}

// Len returns the number of bound keys
func (km *KeyMap) Len() int {
	return len(km.keys) + len(km.runes)
}

func isQuitKey(k tcell.Key) bool {
	return k == tcell.KeyEscape || k == tcell.KeyCtrlC
}

func isQuitRune(r rune) bool {
	return r == 'q'
}
