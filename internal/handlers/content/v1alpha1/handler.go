// Package v1alpha1 handles the content grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/services/character"
	"github.com/KirkDiggler/rpg-content/internal/services/content"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ContentService   content.Service
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.ContentService == nil {
		vb.RequiredField("ContentService")
	}
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	return vb.Build()
}

// Handler implements ContentServiceServer
type Handler struct {
	contentService   content.Service
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		contentService:   cfg.ContentService,
		characterService: cfg.CharacterService,
	}, nil
}

var _ ContentServiceServer = (*Handler)(nil)

// Content queries

// ListRaces lists registered races
func (h *Handler) ListRaces(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.contentService.ListRaces(ctx, &content.ListRacesInput{
		PlayableOnly: getBool(req, fieldPlayableOnly),
		Model:        getModel(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	races := make([]any, len(output.Races))
	for i, r := range output.Races {
		races[i] = raceToMap(r)
	}
	return respond(map[string]any{"races": races})
}

// GetRace returns a single race and its sprite sheet for the request model
func (h *Handler) GetRace(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldRaceID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("race_id is required"))
	}

	output, err := h.contentService.GetRace(ctx, &content.GetRaceInput{
		RaceID: getString(req, fieldRaceID),
		Model:  getModel(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"race": raceToMap(output.Race)})
}

// InspectWeapon reports the capability values of a weapon kind
func (h *Handler) InspectWeapon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldKind) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("kind is required"))
	}

	wielder, err := getStatistics(req, fieldWielder)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.contentService.InspectWeapon(ctx, &content.InspectWeaponInput{
		Kind:    getString(req, fieldKind),
		Model:   getModel(req),
		Wielder: wielder,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	weapon := reportToMap(output.Kind, output.Report)
	weapon["wielded"] = output.Wielded
	return respond(map[string]any{"weapon": weapon})
}

// Draft lifecycle

// CreateDraft creates a new character draft
func (h *Handler) CreateDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldPlayerID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.characterService.CreateDraft(ctx, &character.CreateDraftInput{
		PlayerID: getString(req, fieldPlayerID),
		Name:     getString(req, fieldName),
		Seed:     getString(req, fieldSeed),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"draft": draftToMap(output.Draft)})
}

// GetDraft retrieves a character draft
func (h *Handler) GetDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldDraftID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	output, err := h.characterService.GetDraft(ctx, &character.GetDraftInput{
		DraftID: getString(req, fieldDraftID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"draft": draftToMap(output.Draft)})
}

// DeleteDraft deletes a character draft
func (h *Handler) DeleteDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldDraftID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	if _, err := h.characterService.DeleteDraft(ctx, &character.DeleteDraftInput{
		DraftID: getString(req, fieldDraftID),
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{})
}

// Race selection

// SelectRace toggles a race onto the draft
func (h *Handler) SelectRace(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired(fieldDraftID, getString(req, fieldDraftID), vb)
	errors.ValidateRequired(fieldRaceID, getString(req, fieldRaceID), vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.SelectRace(ctx, &character.SelectRaceInput{
		DraftID: getString(req, fieldDraftID),
		RaceID:  getString(req, fieldRaceID),
		Face:    getString(req, fieldFace),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"draft": draftToMap(output.Draft)})
}

// ClearRace removes the draft's race
func (h *Handler) ClearRace(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldDraftID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	output, err := h.characterService.ClearRace(ctx, &character.ClearRaceInput{
		DraftID: getString(req, fieldDraftID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"draft": draftToMap(output.Draft)})
}

// Equipment

// EquipWeapon records a weapon kind on the draft
func (h *Handler) EquipWeapon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired(fieldDraftID, getString(req, fieldDraftID), vb)
	errors.ValidateRequired(fieldKind, getString(req, fieldKind), vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.EquipWeapon(ctx, &character.EquipWeaponInput{
		DraftID: getString(req, fieldDraftID),
		Kind:    getString(req, fieldKind),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"draft": draftToMap(output.Draft)})
}

// UnequipWeapon clears the draft's weapon
func (h *Handler) UnequipWeapon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldDraftID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	output, err := h.characterService.UnequipWeapon(ctx, &character.UnequipWeaponInput{
		DraftID: getString(req, fieldDraftID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"draft": draftToMap(output.Draft)})
}

// InspectDraftWeapon reports the draft's weapon as wielded by the draft
func (h *Handler) InspectDraftWeapon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldDraftID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	output, err := h.characterService.InspectWeapon(ctx, &character.InspectWeaponInput{
		DraftID: getString(req, fieldDraftID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	weapon := reportToMap(output.Kind, output.Report)
	weapon["wielded"] = true
	return respond(map[string]any{"weapon": weapon})
}

// Finalization

// FinalizeDraft turns a complete draft into a stored character
func (h *Handler) FinalizeDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldDraftID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft_id is required"))
	}

	output, err := h.characterService.FinalizeDraft(ctx, &character.FinalizeDraftInput{
		DraftID: getString(req, fieldDraftID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"character":     characterToMap(output.Character),
		"draft_deleted": output.DraftDeleted,
	})
}

// GetCharacter retrieves a finalized character
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldCharacterID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
		CharacterID: getString(req, fieldCharacterID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"character": characterToMap(output.Character)})
}

// ListCharacters lists a player's finalized characters
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if getString(req, fieldPlayerID) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{
		PlayerID: getString(req, fieldPlayerID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	characters := make([]any, len(output.Characters))
	for i, c := range output.Characters {
		characters[i] = characterToMap(c)
	}
	return respond(map[string]any{"characters": characters})
}

func respond(m map[string]any) (*structpb.Struct, error) {
	s, err := toStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return s, nil
}
