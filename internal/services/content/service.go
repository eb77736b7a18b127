// Package content serves read-only queries over the race and weapon registries
package content

import (
	"context"

	"github.com/KirkDiggler/rpg-content/internal/content/race"
	"github.com/KirkDiggler/rpg-content/internal/content/weapon"
	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// Service defines the read-only content queries
type Service interface {
	// ListRaces returns registered races sorted by ID
	ListRaces(ctx context.Context, input *ListRacesInput) (*ListRacesOutput, error)

	// GetRace returns one race with the sprite sheet for the given model
	// Returns errors.NotFound for unknown races
	GetRace(ctx context.Context, input *GetRaceInput) (*GetRaceOutput, error)

	// InspectWeapon builds a weapon, optionally wielded by a stats holder, and reports it
	// Returns errors.NotFound for unknown kinds
	InspectWeapon(ctx context.Context, input *InspectWeaponInput) (*InspectWeaponOutput, error)
}

// RaceInfo is the flattened view of a race descriptor
type RaceInfo struct {
	ID          string
	Playable    bool
	Faces       []string
	SpriteSheet race.SpriteSheet
}

// ListRacesInput defines the request for listing races
type ListRacesInput struct {
	PlayableOnly bool
	// Model is passed to every race when resolving its sprite sheet
	Model any
}

// ListRacesOutput defines the response for listing races
type ListRacesOutput struct {
	Races []RaceInfo
}

// GetRaceInput defines the request for getting a race
type GetRaceInput struct {
	RaceID string
	Model  any
}

// GetRaceOutput defines the response for getting a race
type GetRaceOutput struct {
	Race RaceInfo
}

// InspectWeaponInput defines the request for inspecting a weapon kind
type InspectWeaponInput struct {
	Kind  string
	Model any
	// Wielder is optional; nil inspects the weapon unheld
	Wielder *entities.Statistics
}

// InspectWeaponOutput defines the response for inspecting a weapon kind
type InspectWeaponOutput struct {
	Kind    string
	Wielded bool
	Report  weapon.Report
}

// Config holds the dependencies for the content service
type Config struct {
	Races   race.Registry
	Weapons weapon.Registry
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Races == nil {
		vb.RequiredField("Races")
	}
	if c.Weapons == nil {
		vb.RequiredField("Weapons")
	}
	return vb.Build()
}

type service struct {
	races   race.Registry
	weapons weapon.Registry
}

// New creates a content service
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		races:   cfg.Races,
		weapons: cfg.Weapons,
	}, nil
}

func (s *service) ListRaces(_ context.Context, input *ListRacesInput) (*ListRacesOutput, error) {
	if input == nil {
		input = &ListRacesInput{}
	}

	descriptors := s.races.List()
	if input.PlayableOnly {
		descriptors = s.races.ListPlayable()
	}

	races := make([]RaceInfo, len(descriptors))
	for i, d := range descriptors {
		races[i] = toRaceInfo(d, input.Model)
	}

	return &ListRacesOutput{Races: races}, nil
}

func (s *service) GetRace(_ context.Context, input *GetRaceInput) (*GetRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := s.races.Get(input.RaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get race")
	}

	return &GetRaceOutput{Race: toRaceInfo(d, input.Model)}, nil
}

func (s *service) InspectWeapon(_ context.Context, input *InspectWeaponInput) (*InspectWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Kind == "" {
		return nil, errors.InvalidArgument("weapon kind is required")
	}

	w, err := s.weapons.Create(input.Kind, input.Model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create weapon")
	}
	if input.Wielder != nil {
		w.Equip(statsHolder(*input.Wielder))
	}

	_, wielded := w.Wielder().User()
	return &InspectWeaponOutput{
		Kind:    input.Kind,
		Wielded: wielded,
		Report:  weapon.Describe(w),
	}, nil
}

func toRaceInfo(d race.Descriptor, model any) RaceInfo {
	return RaceInfo{
		ID:          d.ID(),
		Playable:    d.IsPlayable(),
		Faces:       d.Faces(),
		SpriteSheet: d.SpriteSheet(model),
	}
}

// statsHolder lets a bare statistics record wield a weapon
type statsHolder entities.Statistics

func (h statsHolder) GetStatistics() entities.Statistics {
	return entities.Statistics(h)
}
