package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/loop"
)

const (
	repeatDelay = 0.2
	repeatRate  = 0.05
)

type binding struct {
	keys   []ebiten.Key
	action loop.Action
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: loop.ActionLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: loop.ActionRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: loop.ActionStep, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, action: loop.ActionRotate},
	{keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX}, action: loop.ActionHardDrop},
	{keys: []ebiten.Key{ebiten.KeyR}, action: loop.ActionReset},
}

// KeyState reports the keyboard state for one frame.
type KeyState interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

// keyRepeater turns key state into actions. Held movement keys repeat after
// repeatDelay, once every repeatRate seconds.
type keyRepeater struct {
	held map[loop.Action]float64
}

func newKeyRepeater() *keyRepeater {
	return &keyRepeater{held: make(map[loop.Action]float64)}
}

func (r *keyRepeater) actions(state KeyState, dt float64) []loop.Action {
	var actions []loop.Action
	for _, b := range bindings {
		just, down := false, false
		for _, key := range b.keys {
			just = just || state.JustPressed(key)
			down = down || state.Pressed(key)
		}

		switch {
		case just:
			r.held[b.action] = 0
			actions = append(actions, b.action)
		case down && b.repeat:
			r.held[b.action] += dt
			if r.held[b.action] > repeatDelay {
				r.held[b.action] -= repeatRate
				actions = append(actions, b.action)
			}
		default:
			delete(r.held, b.action)
		}
	}
	return actions
}
