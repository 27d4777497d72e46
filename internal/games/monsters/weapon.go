package monsters

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownWeapon is returned by Effect for a value outside the weapon set.
var ErrUnknownWeapon = errors.New("monsters: unknown weapon")

// Weapon selects one of the built-in damage profiles.
type Weapon int

const (
	WeaponConstant Weapon = iota // every live monster takes -level
	WeaponLinear                 // damage grows with live rank
	WeaponSinus                  // alternating damage and heal by live rank
	WeaponGaussian               // bell curve around the strongest monster
)

// Weapons lists the weapon set in display order.
var Weapons = []Weapon{WeaponConstant, WeaponLinear, WeaponSinus, WeaponGaussian}

// Key returns the input character that fires the weapon.
func (w Weapon) Key() rune {
	switch w {
	case WeaponConstant:
		return 'c'
	case WeaponLinear:
		return 'l'
	case WeaponSinus:
		return 's'
	case WeaponGaussian:
		return 'g'
	default:
		return '?'
	}
}

// Name returns the display name of the weapon.
func (w Weapon) Name() string {
	switch w {
	case WeaponConstant:
		return "Constant Cannon"
	case WeaponLinear:
		return "Linear Laser"
	case WeaponSinus:
		return "Sinus Shooter"
	case WeaponGaussian:
		return "Gaussian Gun"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer.
func (w Weapon) String() string {
	return w.Name()
}

// Valid reports whether w is one of the built-in weapons.
func (w Weapon) Valid() bool {
	return w >= WeaponConstant && w <= WeaponGaussian
}

// ParseWeapon maps an input character to a weapon.
func ParseWeapon(key rune) (Weapon, bool) {
	for _, w := range Weapons {
		if w.Key() == key {
			return w, true
		}
	}
	return 0, false
}

// Effect computes the signed hit-point change every slot would receive if w
// were fired at the given yard with the given level. Empty slots always get 0.
// It does not modify positions.
func Effect(positions []int, level int, w Weapon) ([]int, error) {
	effect := make([]int, len(positions))
	live := liveSlots(positions)

	switch w {
	case WeaponConstant:
		for _, i := range live {
			effect[i] = -level
		}

	case WeaponLinear:
		for rank, i := range live {
			effect[i] = -level * (rank + 1)
		}

	case WeaponSinus:
		for rank, i := range live {
			if rank%2 == 1 {
				effect[i] = level
			} else {
				effect[i] = -level
			}
		}

	case WeaponGaussian:
		// Distance is measured in slots, not in live rank.
		center := strongestSlot(positions)
		for _, i := range live {
			d := float64(i - center)
			effect[i] = int(math.Round(-float64(level) * math.Exp(-0.5*d*d)))
		}

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownWeapon, int(w))
	}

	return effect, nil
}

// liveSlots returns the indexes of slots holding a monster, in yard order.
func liveSlots(positions []int) []int {
	live := make([]int, 0, len(positions))
	for i, hp := range positions {
		if hp > 0 {
			live = append(live, i)
		}
	}
	return live
}

// strongestSlot returns the first index holding the maximum value.
func strongestSlot(positions []int) int {
	best := 0
	for i, hp := range positions {
		if hp > positions[best] {
			best = i
		}
	}
	return best
}
