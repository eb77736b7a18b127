// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-content/internal/content/race"
	"github.com/KirkDiggler/rpg-content/internal/content/weapon"
	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-content/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-content/internal/services/character"
)

const (
	standardAttribute   = 5
	baseMeleeDamage     = 3
	baseActionPoints    = 10
	rolledAttributeSize = 10
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	DraftRepo     draftrepo.Repository
	CharacterRepo characterrepo.Repository
	Races         race.Registry
	Weapons       weapon.Registry
	IDGenerator   idgen.Generator
	EventBus      events.EventBus
	DiceRoller    dice.Roller

	// Optional
	Clock       clock.Clock
	DraftTTL    time.Duration
	DefaultSeed string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Races == nil {
		vb.RequiredField("Races")
	}
	if c.Weapons == nil {
		vb.RequiredField("Weapons")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.DraftTTL < 0 {
		vb.Field("DraftTTL", "must not be negative")
	}
	if c.DefaultSeed != "" {
		errors.ValidateEnum("DefaultSeed", c.DefaultSeed,
			[]string{character.SeedStandard, character.SeedRolled}, vb)
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	draftRepo     draftrepo.Repository
	characterRepo characterrepo.Repository
	races         race.Registry
	weapons       weapon.Registry
	idGenerator   idgen.Generator
	eventBus      events.EventBus
	diceRoller    dice.Roller
	clock         clock.Clock
	draftTTL      time.Duration
	defaultSeed   string
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		draftRepo:     cfg.DraftRepo,
		characterRepo: cfg.CharacterRepo,
		races:         cfg.Races,
		weapons:       cfg.Weapons,
		idGenerator:   cfg.IDGenerator,
		eventBus:      cfg.EventBus,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		draftTTL:      cfg.DraftTTL,
		defaultSeed:   cfg.DefaultSeed,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.draftTTL == 0 {
		o.draftTTL = draftrepo.DefaultTTL
	}
	if o.defaultSeed == "" {
		o.defaultSeed = character.SeedStandard
	}

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Draft lifecycle methods

// CreateDraft creates a new character draft with seeded statistics
func (o *Orchestrator) CreateDraft(
	ctx context.Context,
	input *character.CreateDraftInput,
) (*character.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	seed := input.Seed
	if seed == "" {
		seed = o.defaultSeed
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateEnum("seed", seed, []string{character.SeedStandard, character.SeedRolled}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	stats, err := o.seedStatistics(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed statistics")
	}

	now := o.clock.Now()
	draft := &entities.CharacterDraft{
		ID:         o.idGenerator.Generate(),
		PlayerID:   input.PlayerID,
		Name:       input.Name,
		Statistics: stats,
		ExpiresAt:  now.Add(o.draftTTL).Unix(),
		CreatedAt:  now.Unix(),
		UpdatedAt:  now.Unix(),
	}

	out, err := o.draftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	slog.Info("created character draft",
		"draft_id", draft.ID,
		"player_id", draft.PlayerID,
		"seed", seed)

	return &character.CreateDraftOutput{
		Draft: out.Draft,
	}, nil
}

func (o *Orchestrator) seedStatistics(seed string) (entities.Statistics, error) {
	stats := entities.Statistics{
		MeleeDamage:  baseMeleeDamage,
		ActionPoints: baseActionPoints,
	}

	attributes := []*int{
		&stats.Strength,
		&stats.Perception,
		&stats.Endurance,
		&stats.Charisma,
		&stats.Intelligence,
		&stats.Agility,
		&stats.Luck,
	}

	for _, attr := range attributes {
		if seed == character.SeedStandard {
			*attr = standardAttribute
			continue
		}

		roll, err := o.diceRoller.Roll(rolledAttributeSize)
		if err != nil {
			return entities.Statistics{}, errors.Internalf("failed to roll attribute: %v", err)
		}
		*attr = roll
	}

	return stats, nil
}

// GetDraft retrieves a character draft by ID
func (o *Orchestrator) GetDraft(
	ctx context.Context,
	input *character.GetDraftInput,
) (*character.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	return &character.GetDraftOutput{
		Draft: draft,
	}, nil
}

// DeleteDraft deletes a character draft
func (o *Orchestrator) DeleteDraft(
	ctx context.Context,
	input *character.DeleteDraftInput,
) (*character.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft").
			WithMeta("draft_id", input.DraftID)
	}

	slog.Info("deleted character draft", "draft_id", input.DraftID)

	return &character.DeleteDraftOutput{}, nil
}

// Race selection

// SelectRace swaps the draft's race, reversing the previous race's modifiers first
func (o *Orchestrator) SelectRace(
	ctx context.Context,
	input *character.SelectRaceInput,
) (*character.SelectRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	errors.ValidateRequired("raceID", input.RaceID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	selected, err := o.races.Get(input.RaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get race")
	}
	if !selected.IsPlayable() {
		return nil, errors.InvalidArgumentf("race %s is not playable", input.RaceID).
			WithMeta("race_id", input.RaceID)
	}

	face := input.Face
	if face == "" {
		face = selected.Faces()[0]
	}
	if !race.HasFace(selected, face) {
		return nil, errors.InvalidArgumentf("race %s does not offer face %s", input.RaceID, face).
			WithMeta("race_id", input.RaceID).
			WithMeta("face", face)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	var toggles []raceToggle
	if draft.RaceID != selected.ID() {
		if draft.HasRace() {
			previous, err := o.races.Get(draft.RaceID)
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition,
					"draft has a race that is no longer registered").
					WithMeta("race_id", draft.RaceID)
			}
			previous.OnToggled(&draft.Statistics, false)
			toggles = append(toggles, raceToggle{raceID: previous.ID(), face: draft.Face, toggled: false})
		}

		selected.OnToggled(&draft.Statistics, true)
		toggles = append(toggles, raceToggle{raceID: selected.ID(), face: face, toggled: true})
	}

	draft.RaceID = selected.ID()
	draft.Face = face

	updated, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	o.publishToggles(ctx, updated, toggles)

	slog.Info("selected race for draft",
		"draft_id", updated.ID,
		"race_id", updated.RaceID,
		"face", updated.Face)

	return &character.SelectRaceOutput{
		Draft: updated,
	}, nil
}

// ClearRace reverses and removes the draft's race
func (o *Orchestrator) ClearRace(
	ctx context.Context,
	input *character.ClearRaceInput,
) (*character.ClearRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if !draft.HasRace() {
		return &character.ClearRaceOutput{Draft: draft}, nil
	}

	previous, err := o.races.Get(draft.RaceID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition,
			"draft has a race that is no longer registered").
			WithMeta("race_id", draft.RaceID)
	}

	previous.OnToggled(&draft.Statistics, false)
	toggle := raceToggle{raceID: previous.ID(), face: draft.Face, toggled: false}
	draft.RaceID = ""
	draft.Face = ""

	updated, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	o.publishToggles(ctx, updated, []raceToggle{toggle})

	slog.Info("cleared race for draft", "draft_id", updated.ID, "race_id", toggle.raceID)

	return &character.ClearRaceOutput{
		Draft: updated,
	}, nil
}

// Equipment

// EquipWeapon records the weapon kind the draft starts with
func (o *Orchestrator) EquipWeapon(
	ctx context.Context,
	input *character.EquipWeaponInput,
) (*character.EquipWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	errors.ValidateRequired("kind", input.Kind, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.weapons.Create(input.Kind, nil); err != nil {
		return nil, errors.Wrap(err, "failed to resolve weapon kind")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	draft.WeaponKind = input.Kind

	updated, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &character.EquipWeaponOutput{
		Draft: updated,
	}, nil
}

// UnequipWeapon removes the draft's weapon
func (o *Orchestrator) UnequipWeapon(
	ctx context.Context,
	input *character.UnequipWeaponInput,
) (*character.UnequipWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.WeaponKind == "" {
		return &character.UnequipWeaponOutput{Draft: draft}, nil
	}
	draft.WeaponKind = ""

	updated, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &character.UnequipWeaponOutput{
		Draft: updated,
	}, nil
}

// InspectWeapon builds the equipped weapon with the draft as wielder and reports it
func (o *Orchestrator) InspectWeapon(
	ctx context.Context,
	input *character.InspectWeaponInput,
) (*character.InspectWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.WeaponKind == "" {
		return nil, errors.FailedPrecondition("draft has no weapon equipped").
			WithMeta("draft_id", draft.ID)
	}

	w, err := o.weapons.Create(draft.WeaponKind, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create weapon")
	}
	w.Equip(draft)

	return &character.InspectWeaponOutput{
		Kind:   draft.WeaponKind,
		Report: weapon.Describe(w),
	}, nil
}

func (o *Orchestrator) loadDraft(ctx context.Context, draftID string) (*entities.CharacterDraft, error) {
	if draftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft").
			WithMeta("draft_id", draftID)
	}
	return out.Draft, nil
}

func (o *Orchestrator) saveDraft(
	ctx context.Context,
	draft *entities.CharacterDraft,
) (*entities.CharacterDraft, error) {
	draft.UpdatedAt = o.clock.Now().Unix()

	out, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update draft").
			WithMeta("draft_id", draft.ID)
	}
	return out.Draft, nil
}
