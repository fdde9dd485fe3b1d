package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/engine"
)

// InputHandler translates terminal key events into the snake's pending direction.
// It never produces game events; unbound keys are ignored.
type InputHandler struct {
	session *engine.Session
	keys    *KeyMap
}

// NewInputHandler creates a handler for session; nil keys means DefaultKeyMap
func NewInputHandler(session *engine.Session, keys *KeyMap) *InputHandler {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &InputHandler{session: session, keys: keys}
}

// SetKeyMap swaps bindings, used on config reload
func (h *InputHandler) SetKeyMap(keys *KeyMap) {
	if keys != nil {
		h.keys = keys
	}
}

// HandleEvent processes one terminal event. Returns false when the user asked to quit.
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	if isQuitKey(key.Key()) || (key.Key() == tcell.KeyRune && isQuitRune(key.Rune())) {
		return false
	}

	if dir, ok := h.keys.Lookup(key); ok {
		h.session.Snake.SetDirection(dir)
	}
	return true
}
