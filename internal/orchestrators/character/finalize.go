package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-content/internal/services/character"
)

// FinalizeDraft stores a complete draft as a character and removes the draft
func (o *Orchestrator) FinalizeDraft(
	ctx context.Context,
	input *character.FinalizeDraftInput,
) (*character.FinalizeDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	var missing []string
	if draft.Name == "" {
		missing = append(missing, "name")
	}
	if !draft.HasRace() {
		missing = append(missing, "race")
	}
	if len(missing) > 0 {
		return nil, errors.FailedPrecondition("cannot finalize incomplete draft").
			WithMeta("missing_steps", missing).
			WithMeta("draft_id", draft.ID)
	}

	if _, err := o.races.Get(draft.RaceID); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition,
			"draft has a race that is no longer registered").
			WithMeta("race_id", draft.RaceID)
	}

	finalChar := &entities.Character{
		ID:         o.idGenerator.Generate(),
		PlayerID:   draft.PlayerID,
		Name:       draft.Name,
		RaceID:     draft.RaceID,
		Face:       draft.Face,
		WeaponKind: draft.WeaponKind,
		Statistics: draft.Statistics,
		CreatedAt:  o.clock.Now().Unix(),
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: finalChar})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character").
			WithMeta("draft_id", draft.ID)
	}

	_, err = o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: draft.ID})
	if err != nil {
		slog.Error("failed to delete draft", "draft_id", draft.ID, "error", err)
	}

	o.publishFinalized(ctx, out.Character, draft.ID)

	slog.Info("finalized character draft",
		"draft_id", draft.ID,
		"character_id", out.Character.ID,
		"race_id", out.Character.RaceID)

	return &character.FinalizeDraftOutput{
		Character:    out.Character,
		DraftDeleted: err == nil,
	}, nil
}

// GetCharacter retrieves a finalized character
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &character.GetCharacterOutput{
		Character: out.Character,
	}, nil
}

// ListCharacters lists a player's finalized characters
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{
		Characters: out.Characters,
	}, nil
}

func (o *Orchestrator) publishFinalized(ctx context.Context, char *entities.Character, draftID string) {
	event := events.NewGameEvent(EventCharacterFinalized, &characterEntity{character: char}, nil)
	event.Context().Set(EventKeyDraftID, draftID)
	event.Context().Set(EventKeyRaceID, char.RaceID)
	event.Context().Set(EventKeyPlayerID, char.PlayerID)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish character finalized event",
			"character_id", char.ID,
			"error", err)
	}
}
