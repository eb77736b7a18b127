package weapon_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-content/internal/content/weapon"
	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// thrown is a minimal second variant exercising the shared capability contract
type thrown struct {
	weapon.Base
}

func (t *thrown) ActionPointCost() int { return 4 }
func (t *thrown) DamageType() string   { return "pierce" }
func (t *thrown) DamageBase() int      { return 2 }
func (t *thrown) DamageRange() weapon.DamageRange {
	return weapon.DamageRange{Min: t.DamageBase(), Max: 5}
}

type RegistryTestSuite struct {
	suite.Suite
	registry weapon.Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	registry, err := weapon.NewDefaultRegistry()
	s.Require().NoError(err)
	s.registry = registry
}

func (s *RegistryTestSuite) TestCreateMelee() {
	w, err := s.registry.Create(weapon.MeleeKind, nil)
	s.Require().NoError(err)

	s.Equal(3, w.ActionPointCost())
	s.Equal("blunt", w.DamageType())
	s.Equal(weapon.DamageRange{Min: 3, Max: 3}, w.DamageRange())
}

func (s *RegistryTestSuite) TestCreateReturnsFreshInstances() {
	first, err := s.registry.Create(weapon.MeleeKind, nil)
	s.Require().NoError(err)
	second, err := s.registry.Create(weapon.MeleeKind, nil)
	s.Require().NoError(err)

	first.Equip(&fakeUser{})
	_, held := second.Wielder().User()
	s.False(held)
}

func (s *RegistryTestSuite) TestCreateUnknownKind() {
	_, err := s.registry.Create("laser", nil)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RegistryTestSuite) TestRegister() {
	testCases := []struct {
		name    string
		kind    string
		factory weapon.Factory
		check   func(error) bool
	}{
		{
			name:    "empty kind",
			kind:    "",
			factory: weapon.CreateMelee,
			check:   errors.IsInvalidArgument,
		},
		{
			name:    "nil factory",
			kind:    "thrown",
			factory: nil,
			check:   errors.IsInvalidArgument,
		},
		{
			name:    "duplicate kind",
			kind:    weapon.MeleeKind,
			factory: weapon.CreateMelee,
			check:   errors.IsAlreadyExists,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.registry.Register(tc.kind, tc.factory)
			s.Require().Error(err)
			s.True(tc.check(err))
		})
	}
}

func (s *RegistryTestSuite) TestRegisterNewVariant() {
	err := s.registry.Register("thrown", func(model any) weapon.Weapon {
		return &thrown{Base: weapon.NewBase(model)}
	})
	s.Require().NoError(err)
	s.Equal([]string{"melee", "thrown"}, s.registry.Kinds())

	w, err := s.registry.Create("thrown", "dagger")
	s.Require().NoError(err)
	s.Equal("dagger", w.Model())
	s.Equal(4, w.ActionPointCost())
	s.Equal(weapon.DamageRange{Min: 2, Max: 5}, w.DamageRange())
}
