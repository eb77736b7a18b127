// Package weapon defines the weapon capability, its variants and the factory registry
package weapon

import (
	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// DamageRange is the (minimum, maximum) damage of an attack
type DamageRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Capability is implemented by every weapon variant. None of the accessors fail.
type Capability interface {
	ActionPointCost() int
	DamageType() string
	DamageRange() DamageRange
	DamageBase() int
}

// Weapon is a capability that can be handed to a user
type Weapon interface {
	Capability
	Model() any
	Wielder() Wielder
	Equip(user User)
	Unequip()
}

// User is anything that can hold a weapon
type User interface {
	GetStatistics() entities.Statistics
}

// Wielder is either empty or holds a user. The weapon never owns the user.
type Wielder struct {
	user User
}

// NoWielder is the state of a weapon nobody holds
func NoWielder() Wielder {
	return Wielder{}
}

// WieldedBy returns a Wielder holding user; a nil user yields NoWielder
func WieldedBy(user User) Wielder {
	return Wielder{user: user}
}

// User returns the holder and whether there is one
func (w Wielder) User() (User, bool) {
	return w.user, w.user != nil
}

// Base carries the bookkeeping shared by all variants: the opaque model and the wielder.
// Variants embed it.
type Base struct {
	model   any
	wielder Wielder
}

// NewBase stores model verbatim without validating it
func NewBase(model any) Base {
	return Base{model: model}
}

// Model returns the definition the weapon was created from
func (b *Base) Model() any {
	return b.model
}

// Wielder returns the current holder
func (b *Base) Wielder() Wielder {
	return b.wielder
}

// Equip attaches user as the holder
func (b *Base) Equip(user User) {
	b.wielder = WieldedBy(user)
}

// Unequip clears the holder
func (b *Base) Unequip() {
	b.wielder = NoWielder()
}
