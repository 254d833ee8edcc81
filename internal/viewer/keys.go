package viewer

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"wireframe-viewer/internal/input"
)

// Held keys start repeating after repeatDelay ticks, then fire every
// repeatInterval ticks.
const (
	repeatDelay    = 18
	repeatInterval = 3
)

type keyAction struct {
	key    ebiten.Key
	action input.Action
}

// resolveKeys maps binding key names to ebiten keys.
func resolveKeys(b input.Bindings) ([]keyAction, error) {
	byName := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if name := k.String(); name != "" {
			byName[strings.ToLower(name)] = k
		}
	}

	keys := make([]keyAction, 0, len(b))
	for _, bind := range b {
		k, ok := byName[strings.ToLower(bind.Key)]
		if !ok {
			return nil, errors.Errorf("viewer: unknown key %q", bind.Key)
		}
		keys = append(keys, keyAction{key: k, action: bind.Action})
	}
	return keys, nil
}

// fired reports whether ka should trigger on this tick.
func (ka keyAction) fired() bool {
	if inpututil.IsKeyJustPressed(ka.key) {
		return true
	}
	if !ka.action.Repeatable() {
		return false
	}
	d := inpututil.KeyPressDuration(ka.key)
	return d > repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
