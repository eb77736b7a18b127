package weapon_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-content/internal/content/weapon"
	"github.com/KirkDiggler/rpg-content/internal/entities"
)

type fakeUser struct {
	stats entities.Statistics
}

func (u *fakeUser) GetStatistics() entities.Statistics {
	return u.stats
}

type MeleeTestSuite struct {
	suite.Suite
	melee *weapon.Melee
}

func TestMeleeSuite(t *testing.T) {
	suite.Run(t, new(MeleeTestSuite))
}

func (s *MeleeTestSuite) SetupTest() {
	s.melee = weapon.NewMelee(map[string]any{"name": "club"})
}

func (s *MeleeTestSuite) TestConstants() {
	s.Equal(3, s.melee.ActionPointCost())
	s.Equal("blunt", s.melee.DamageType())
}

func (s *MeleeTestSuite) TestDamageWithoutWielder() {
	_, held := s.melee.Wielder().User()
	s.False(held)

	s.Equal(3, s.melee.DamageBase())
	s.Equal(weapon.DamageRange{Min: 3, Max: 3}, s.melee.DamageRange())
}

func (s *MeleeTestSuite) TestDamageFollowsWielder() {
	testCases := []struct {
		name        string
		meleeDamage int
		expected    weapon.DamageRange
	}{
		{name: "weak wielder", meleeDamage: 1, expected: weapon.DamageRange{Min: 1, Max: 3}},
		{name: "zero melee damage", meleeDamage: 0, expected: weapon.DamageRange{Min: 0, Max: 3}},
		// The maximum stays at 3, so a strong wielder produces Min > Max.
		{name: "strong wielder", meleeDamage: 7, expected: weapon.DamageRange{Min: 7, Max: 3}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.melee.Equip(&fakeUser{stats: entities.Statistics{MeleeDamage: tc.meleeDamage}})

			s.Equal(tc.meleeDamage, s.melee.DamageBase())
			s.Equal(tc.expected, s.melee.DamageRange())
		})
	}
}

func (s *MeleeTestSuite) TestUnequipFallsBackToDefault() {
	user := &fakeUser{stats: entities.Statistics{MeleeDamage: 7}}
	s.melee.Equip(user)

	holder, held := s.melee.Wielder().User()
	s.Require().True(held)
	s.Same(user, holder)

	s.melee.Unequip()
	_, held = s.melee.Wielder().User()
	s.False(held)
	s.Equal(weapon.DamageRange{Min: 3, Max: 3}, s.melee.DamageRange())
}

func (s *MeleeTestSuite) TestEquipNilIsNoWielder() {
	s.melee.Equip(nil)

	_, held := s.melee.Wielder().User()
	s.False(held)
	s.Equal(3, s.melee.DamageBase())
}

func (s *MeleeTestSuite) TestNilModelConstruction() {
	melee := weapon.NewMelee(nil)

	s.Nil(melee.Model())
	s.Equal(3, melee.ActionPointCost())
	s.Equal("blunt", melee.DamageType())
	s.Equal(3, melee.DamageBase())
	s.Equal(weapon.DamageRange{Min: 3, Max: 3}, melee.DamageRange())
}

func (s *MeleeTestSuite) TestModelStoredVerbatim() {
	model := map[string]any{"name": "club", "weight": 4}
	melee := weapon.CreateMelee(model)

	s.Equal(model, melee.Model())
}

func (s *MeleeTestSuite) TestWielderVariants() {
	_, held := weapon.NoWielder().User()
	s.False(held)

	_, held = weapon.WieldedBy(nil).User()
	s.False(held)

	user := &fakeUser{}
	holder, held := weapon.WieldedBy(user).User()
	s.True(held)
	s.Same(user, holder)
}

func (s *MeleeTestSuite) TestDescribe() {
	s.melee.Equip(&fakeUser{stats: entities.Statistics{MeleeDamage: 7}})

	s.Equal(weapon.Report{
		ActionPointCost: 3,
		DamageType:      "blunt",
		DamageBase:      7,
		DamageRange:     weapon.DamageRange{Min: 7, Max: 3},
	}, weapon.Describe(s.melee))
}
