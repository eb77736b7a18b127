// Package character defines the interface for character creation operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-content/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-content/internal/content/weapon"
	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// Statistic seeding methods for new drafts
const (
	SeedStandard = "standard"
	SeedRolled   = "rolled"
)

// Service defines the interface for character creation
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Race selection toggles race modifiers on the draft statistics
	SelectRace(ctx context.Context, input *SelectRaceInput) (*SelectRaceOutput, error)
	ClearRace(ctx context.Context, input *ClearRaceInput) (*ClearRaceOutput, error)

	// Equipment
	EquipWeapon(ctx context.Context, input *EquipWeaponInput) (*EquipWeaponOutput, error)
	UnequipWeapon(ctx context.Context, input *UnequipWeaponInput) (*UnequipWeaponOutput, error)
	InspectWeapon(ctx context.Context, input *InspectWeaponInput) (*InspectWeaponOutput, error)

	// Finalization turns a complete draft into a stored character
	FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
}

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	PlayerID string
	Name     string
	// Seed is SeedStandard or SeedRolled; empty means the orchestrator default
	Seed string
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *entities.CharacterDraft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *entities.CharacterDraft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct{}

// SelectRaceInput defines the request for selecting a race
type SelectRaceInput struct {
	DraftID string
	RaceID  string
	// Face defaults to the race's first face when empty
	Face string
}

// SelectRaceOutput defines the response for selecting a race
type SelectRaceOutput struct {
	Draft *entities.CharacterDraft
}

// ClearRaceInput defines the request for deselecting the current race
type ClearRaceInput struct {
	DraftID string
}

// ClearRaceOutput defines the response for deselecting the current race
type ClearRaceOutput struct {
	Draft *entities.CharacterDraft
}

// EquipWeaponInput defines the request for equipping a weapon kind
type EquipWeaponInput struct {
	DraftID string
	Kind    string
}

// EquipWeaponOutput defines the response for equipping a weapon kind
type EquipWeaponOutput struct {
	Draft *entities.CharacterDraft
}

// UnequipWeaponInput defines the request for removing the equipped weapon
type UnequipWeaponInput struct {
	DraftID string
}

// UnequipWeaponOutput defines the response for removing the equipped weapon
type UnequipWeaponOutput struct {
	Draft *entities.CharacterDraft
}

// InspectWeaponInput defines the request for inspecting the equipped weapon
type InspectWeaponInput struct {
	DraftID string
}

// InspectWeaponOutput reports the equipped weapon as wielded by the draft
type InspectWeaponOutput struct {
	Kind   string
	Report weapon.Report
}

// FinalizeDraftInput defines the request for finalizing a draft
type FinalizeDraftInput struct {
	DraftID string
}

// FinalizeDraftOutput defines the response for finalizing a draft
type FinalizeDraftOutput struct {
	Character    *entities.Character
	DraftDeleted bool
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing a player's characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}
