package input

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Binding maps one key, by its ebiten key name ("W", "ArrowUp",
// "Escape", ...), to an action.
type Binding struct {
	Key    string
	Action Action
}

// Bindings is an ordered key table. Lookups are case-insensitive.
type Bindings []Binding

// DefaultBindings: W/S pitch and A/D yaw, arrows move, =/- zoom,
// 0 resets zoom, Escape or Q quits.
func DefaultBindings() Bindings {
	return Bindings{
		{"W", RotateUp},
		{"S", RotateDown},
		{"A", RotateLeft},
		{"D", RotateRight},
		{"ArrowUp", MoveForward},
		{"ArrowDown", MoveBackward},
		{"ArrowLeft", MoveLeft},
		{"ArrowRight", MoveRight},
		{"Equal", ZoomIn},
		{"Minus", ZoomOut},
		{"Digit0", ResetZoom},
		{"Escape", Quit},
		{"Q", Quit},
	}
}

func (b Bindings) Lookup(key string) Action {
	for _, bind := range b {
		if strings.EqualFold(bind.Key, key) {
			return bind.Action
		}
	}
	return None
}

// Override returns a copy of b with every key in keys rebound.
// Mapping a key to "none" removes it.
func (b Bindings) Override(keys map[string]string) (Bindings, error) {
	out := make(Bindings, 0, len(b)+len(keys))
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)

	overridden := make(map[string]Action, len(keys))
	for _, k := range names {
		if strings.TrimSpace(k) == "" {
			return nil, errors.New("input: empty key name")
		}
		a, err := ParseAction(keys[k])
		if err != nil {
			return nil, errors.Wrapf(err, "input: key %q", k)
		}
		overridden[strings.ToLower(k)] = a
	}

	for _, bind := range b {
		if _, ok := overridden[strings.ToLower(bind.Key)]; ok {
			continue
		}
		out = append(out, bind)
	}
	for _, k := range names {
		if a := overridden[strings.ToLower(k)]; a != None {
			out = append(out, Binding{Key: k, Action: a})
		}
	}
	return out, nil
}
