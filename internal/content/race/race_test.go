package race_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-content/internal/content/race"
	"github.com/KirkDiggler/rpg-content/internal/entities"
)

type GriffonTestSuite struct {
	suite.Suite
}

func TestGriffonSuite(t *testing.T) {
	suite.Run(t, new(GriffonTestSuite))
}

func (s *GriffonTestSuite) TestDescriptorConstants() {
	s.Equal(race.GriffonID, race.Griffon.ID())
	s.True(race.Griffon.IsPlayable())
	s.Equal([]string{"griffon"}, race.Griffon.Faces())
}

func (s *GriffonTestSuite) TestFacesReturnsCopy() {
	faces := race.Griffon.Faces()
	faces[0] = "pony"

	s.Equal([]string{"griffon"}, race.Griffon.Faces())
	s.True(race.HasFace(race.Griffon, "griffon"))
	s.False(race.HasFace(race.Griffon, "pony"))
}

func (s *GriffonTestSuite) TestSpriteSheetIgnoresModel() {
	expected := race.SpriteSheet{
		CloneOf: "griffon",
		Base:    "griffon",
		Overlay: "griffon-wings",
	}

	testCases := []struct {
		name  string
		model any
	}{
		{name: "nil model", model: nil},
		{name: "string model", model: "pony"},
		{name: "map model", model: map[string]any{"base": "unicorn", "overlay": "horn"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(expected, race.Griffon.SpriteSheet(tc.model))
		})
	}
}

func (s *GriffonTestSuite) TestOnToggled() {
	stats := &entities.Statistics{
		Strength: 5, Perception: 5, Endurance: 5, Charisma: 5,
		Intelligence: 5, Agility: 5, Luck: 5, MeleeDamage: 3, ActionPoints: 7,
	}

	race.Griffon.OnToggled(stats, true)
	s.Equal(6, stats.Strength)
	s.Equal(6, stats.Perception)
	s.Equal(6, stats.Endurance)
	s.Equal(6, stats.Agility)
	s.Equal(5, stats.Charisma, "untouched fields stay put")
	s.Equal(3, stats.MeleeDamage)

	race.Griffon.OnToggled(stats, false)
	s.Equal(5, stats.Strength)
	s.Equal(5, stats.Perception)
	s.Equal(5, stats.Endurance)
	s.Equal(5, stats.Agility)
}

func (s *GriffonTestSuite) TestToggleRoundTripRestoresStatistics() {
	testCases := []struct {
		name  string
		stats entities.Statistics
	}{
		{name: "zero record", stats: entities.Statistics{}},
		{name: "negative values", stats: entities.Statistics{Strength: -3, Perception: -1, Endurance: -10, Agility: -2}},
		{name: "mixed values", stats: entities.Statistics{Strength: 10, Perception: 1, Endurance: 4, Agility: 9, Luck: 2}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			stats := tc.stats

			race.Griffon.OnToggled(&stats, true)
			race.Griffon.OnToggled(&stats, false)

			s.Equal(tc.stats, stats)
		})
	}
}

func (s *GriffonTestSuite) TestUntoggleFirstAlsoRoundTrips() {
	original := entities.Statistics{Strength: 2, Perception: 2, Endurance: 2, Agility: 2}
	stats := original

	race.Griffon.OnToggled(&stats, false)
	s.Equal(1, stats.Strength)
	race.Griffon.OnToggled(&stats, true)

	s.Equal(original, stats)
}
