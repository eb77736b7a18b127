// Package race defines playable race descriptors and the registry that serves them
package race

import (
	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// SpriteSheet names the sprite assets composed to draw a race
type SpriteSheet struct {
	CloneOf string `json:"clone_of"`
	Base    string `json:"base"`
	Overlay string `json:"overlay"`
}

// Descriptor is the contract every race exposes to character creation.
// None of the operations fail.
type Descriptor interface {
	ID() string
	IsPlayable() bool
	// Faces returns the ordered face variants; callers get their own copy
	Faces() []string
	// SpriteSheet maps an opaque race model to sprite assets
	SpriteSheet(model any) SpriteSheet
	// OnToggled adjusts stats in place when the race is selected (true) or
	// deselected (false). A toggle followed by an untoggle is a no-op.
	OnToggled(stats *entities.Statistics, toggled bool)
}

// Definition is a data driven Descriptor
type Definition struct {
	Key      string
	Playable bool
	FaceIDs  []string
	Sprite   SpriteSheet
	// Modifiers is added on toggle and subtracted on untoggle
	Modifiers entities.Statistics
}

// ID returns the registry key of the race
func (d *Definition) ID() string {
	return d.Key
}

// IsPlayable reports whether the race is offered at character creation
func (d *Definition) IsPlayable() bool {
	return d.Playable
}

// Faces returns a copy of the face variants
func (d *Definition) Faces() []string {
	faces := make([]string, len(d.FaceIDs))
	copy(faces, d.FaceIDs)
	return faces
}

// HasFace reports whether the race offers the given face
func HasFace(d Descriptor, face string) bool {
	for _, f := range d.Faces() {
		if f == face {
			return true
		}
	}
	return false
}

// SpriteSheet ignores the model; definitions use the same sprites for every model
func (d *Definition) SpriteSheet(_ any) SpriteSheet {
	return d.Sprite
}

// OnToggled applies the race modifiers to stats
func (d *Definition) OnToggled(stats *entities.Statistics, toggled bool) {
	sign := -1
	if toggled {
		sign = 1
	}
	stats.Apply(d.Modifiers, sign)
}
