package race

import "github.com/KirkDiggler/rpg-content/internal/entities"

// GriffonID is the registry key of the griffon race
const GriffonID = "griffon"

// Griffon is a playable winged race: +1 strength, perception, endurance and agility.
var Griffon = &Definition{
	Key:      GriffonID,
	Playable: true,
	FaceIDs:  []string{"griffon"},
	Sprite: SpriteSheet{
		CloneOf: "griffon",
		Base:    "griffon",
		Overlay: "griffon-wings",
	},
	Modifiers: entities.Statistics{
		Strength:   1,
		Perception: 1,
		Endurance:  1,
		Agility:    1,
	},
}

// Builtin returns the races shipped with the service
func Builtin() []Descriptor {
	return []Descriptor{Griffon}
}
