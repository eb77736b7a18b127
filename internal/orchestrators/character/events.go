package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// Event types published by the orchestrator
const (
	// EventRaceToggled is published once per race toggle on a draft
	EventRaceToggled = "content.race.toggled"
	// EventCharacterFinalized is published after a draft becomes a character
	EventCharacterFinalized = "content.character.finalized"
)

// Event context keys
const (
	EventKeyRaceID   = "race_id"
	EventKeyFace     = "face"
	EventKeyToggled  = "toggled"
	EventKeyPlayerID = "player_id"
	EventKeyDraftID  = "draft_id"
)

// Entity types carried on the event bus
const (
	DraftEntityType     = "character_draft"
	CharacterEntityType = "character"
)

type draftEntity struct {
	draft *entities.CharacterDraft
}

func (e *draftEntity) GetID() string {
	return e.draft.ID
}

func (e *draftEntity) GetType() string {
	return DraftEntityType
}

type characterEntity struct {
	character *entities.Character
}

func (e *characterEntity) GetID() string {
	return e.character.ID
}

func (e *characterEntity) GetType() string {
	return CharacterEntityType
}

var (
	_ core.Entity = (*draftEntity)(nil)
	_ core.Entity = (*characterEntity)(nil)
)

type raceToggle struct {
	raceID  string
	face    string
	toggled bool
}

// publishToggles emits toggles in order. The draft is already stored, so failures are logged only.
func (o *Orchestrator) publishToggles(ctx context.Context, draft *entities.CharacterDraft, toggles []raceToggle) {
	for _, t := range toggles {
		event := events.NewGameEvent(EventRaceToggled, &draftEntity{draft: draft}, nil)
		event.Context().Set(EventKeyRaceID, t.raceID)
		event.Context().Set(EventKeyFace, t.face)
		event.Context().Set(EventKeyToggled, t.toggled)
		event.Context().Set(EventKeyPlayerID, draft.PlayerID)

		if err := o.eventBus.Publish(ctx, event); err != nil {
			slog.Warn("failed to publish race toggled event",
				"draft_id", draft.ID,
				"race_id", t.raceID,
				"toggled", t.toggled,
				"error", err)
		}
	}
}
