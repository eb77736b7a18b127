package character_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/repositories/character"
	"github.com/KirkDiggler/rpg-content/internal/testutils"
)

const testPlayerID = "player_456"

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo character.Repository
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) newCharacter(id string) *entities.Character {
	return &entities.Character{
		ID:       id,
		PlayerID: testPlayerID,
		Name:     "Gilda",
		RaceID:   "griffon",
		Face:     "griffon",
		Statistics: entities.Statistics{
			Strength: 6, Perception: 6, Endurance: 6, Agility: 6, MeleeDamage: 3,
		},
		CreatedAt: 1_700_000_000,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis_RequiresClient() {
	_, err := character.NewRedis(&character.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = character.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	c := s.newCharacter("char_1")

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)

	s.True(s.mr.Exists("character:char_1"))
	members, err := s.mr.Members("character:player:" + testPlayerID)
	s.Require().NoError(err)
	s.Equal([]string{"char_1"}, members)
	s.Zero(s.mr.TTL("character:char_1"))

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(c, out.Character)
}

func (s *RedisRepositoryTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name      string
		character *entities.Character
	}{
		{name: "nil character"},
		{name: "missing ID", character: &entities.Character{PlayerID: testPlayerID}},
		{name: "missing player", character: &entities.Character{ID: "char_1"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, character.CreateInput{Character: tc.character})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreate_AlreadyExists() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	for _, id := range []string{"char_b", "char_a"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("char_a", out.Characters[0].ID)
	s.Equal("char_b", out.Characters[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID_CleansDanglingIndex() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.Require().NoError(err)
	s.mr.Del("character:char_1")

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Empty(out.Characters)
	s.False(s.mr.Exists("character:player:" + testPlayerID))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID_EmptyPlayer() {
	_, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}
