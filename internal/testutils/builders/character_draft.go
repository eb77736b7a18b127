// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-content/internal/content/race"
	"github.com/KirkDiggler/rpg-content/internal/content/weapon"
	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// CharacterDraftBuilder provides a fluent interface for building test CharacterDraft instances
type CharacterDraftBuilder struct {
	draft *entities.CharacterDraft
}

// NewCharacterDraftBuilder creates a new builder with minimal defaults
func NewCharacterDraftBuilder() *CharacterDraftBuilder {
	now := time.Now().Unix()
	return &CharacterDraftBuilder{
		draft: &entities.CharacterDraft{
			ID:        "draft-test-123",
			PlayerID:  "player-test-123",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the draft ID
func (b *CharacterDraftBuilder) WithID(id string) *CharacterDraftBuilder {
	b.draft.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterDraftBuilder) WithPlayerID(playerID string) *CharacterDraftBuilder {
	b.draft.PlayerID = playerID
	return b
}

// WithName sets the character name
func (b *CharacterDraftBuilder) WithName(name string) *CharacterDraftBuilder {
	b.draft.Name = name
	return b
}

// WithStatistics replaces the statistics record
func (b *CharacterDraftBuilder) WithStatistics(stats entities.Statistics) *CharacterDraftBuilder {
	b.draft.Statistics = stats
	return b
}

// WithStandardStatistics sets the statistics a standard seed produces
func (b *CharacterDraftBuilder) WithStandardStatistics() *CharacterDraftBuilder {
	return b.WithStatistics(StandardStatistics())
}

// WithRace records the race and face without touching statistics
func (b *CharacterDraftBuilder) WithRace(raceID, face string) *CharacterDraftBuilder {
	b.draft.RaceID = raceID
	b.draft.Face = face
	return b
}

// WithToggledRace records the race and applies its modifiers, as selection would
func (b *CharacterDraftBuilder) WithToggledRace(d race.Descriptor, face string) *CharacterDraftBuilder {
	d.OnToggled(&b.draft.Statistics, true)
	return b.WithRace(d.ID(), face)
}

// WithWeapon sets the equipped weapon kind
func (b *CharacterDraftBuilder) WithWeapon(kind string) *CharacterDraftBuilder {
	b.draft.WeaponKind = kind
	return b
}

// WithExpiresAt sets the expiry timestamp
func (b *CharacterDraftBuilder) WithExpiresAt(t time.Time) *CharacterDraftBuilder {
	b.draft.ExpiresAt = t.Unix()
	return b
}

// AsComplete builds a griffon draft that can be finalized
func (b *CharacterDraftBuilder) AsComplete() *CharacterDraftBuilder {
	return b.
		WithName("Test Character").
		WithStandardStatistics().
		WithToggledRace(race.Griffon, "griffon").
		WithWeapon(weapon.MeleeKind)
}

// Build returns the constructed CharacterDraft
func (b *CharacterDraftBuilder) Build() *entities.CharacterDraft {
	return b.draft
}

// StandardStatistics returns the record a standard seed produces
func StandardStatistics() entities.Statistics {
	return entities.Statistics{
		Strength:     5,
		Perception:   5,
		Endurance:    5,
		Charisma:     5,
		Intelligence: 5,
		Agility:      5,
		Luck:         5,
		MeleeDamage:  3,
		ActionPoints: 10,
	}
}
