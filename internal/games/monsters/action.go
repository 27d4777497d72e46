package monsters

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidAction is returned by ParseAction for keys that are not bound.
var ErrInvalidAction = errors.New("monsters: invalid action")

// Keys for the non-weapon actions.
const (
	KeyRange   = 'r'
	KeyUpgrade = 'u'
)

// ActionKind distinguishes what a turn does before the yard advances.
type ActionKind int

const (
	ActionFire    ActionKind = iota // fire Action.Weapon
	ActionRange                     // spawn one extra monster at the back
	ActionUpgrade                   // raise the weapon level
)

// String returns a human-readable name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionFire:
		return "Fire"
	case ActionRange:
		return "Range"
	case ActionUpgrade:
		return "Upgrade"
	default:
		return "Unknown"
	}
}

// Action is a parsed player input.
type Action struct {
	Kind   ActionKind
	Weapon Weapon // only meaningful for ActionFire
}

// Fire returns the action firing w.
func Fire(w Weapon) Action {
	return Action{Kind: ActionFire, Weapon: w}
}

// ParseAction maps an input character to an action. Letters are matched
// case-insensitively.
func ParseAction(key rune) (Action, error) {
	key = unicode.ToLower(key)

	switch key {
	case KeyRange:
		return Action{Kind: ActionRange}, nil
	case KeyUpgrade:
		return Action{Kind: ActionUpgrade}, nil
	}

	if w, ok := ParseWeapon(key); ok {
		return Fire(w), nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrInvalidAction, key)
}

// ValidKeys lists every bound key in help order.
func ValidKeys() []rune {
	keys := make([]rune, 0, len(Weapons)+2)
	for _, w := range Weapons {
		keys = append(keys, w.Key())
	}
	return append(keys, KeyRange, KeyUpgrade)
}
