package characterdraft_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	characterdraft "github.com/KirkDiggler/rpg-content/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-content/internal/testutils"
)

const (
	testDraftID   = "draft_123"
	testPlayerID  = "player_456"
	testDraftKey  = "draft:draft_123"
	testPlayerKey = "draft:player:player_456"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo characterdraft.Repository
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := characterdraft.NewRedis(&characterdraft.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) newDraft(id string) *entities.CharacterDraft {
	return &entities.CharacterDraft{
		ID:       id,
		PlayerID: testPlayerID,
		Name:     "Gilda",
		Statistics: entities.Statistics{
			Strength: 5, Perception: 5, Endurance: 5, Agility: 5, MeleeDamage: 3,
		},
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *characterdraft.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &characterdraft.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := characterdraft.NewRedis(tc.config)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	draft := s.newDraft(testDraftID)

	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	s.True(s.mr.Exists(testDraftKey))
	mapped, err := s.mr.Get(testPlayerKey)
	s.Require().NoError(err)
	s.Equal(testDraftID, mapped)
	s.Equal(characterdraft.DefaultTTL, s.mr.TTL(testDraftKey))

	got, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: testDraftID})
	s.Require().NoError(err)
	s.Equal(draft, got.Draft)

	byPlayer, err := s.repo.GetByPlayerID(s.ctx, characterdraft.GetByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(testDraftID, byPlayer.Draft.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateReplacesPlayersDraft() {
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.newDraft("old_draft")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.newDraft(testDraftID)})
	s.Require().NoError(err)

	s.False(s.mr.Exists("draft:old_draft"))
	s.True(s.mr.Exists(testDraftKey))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	expired := s.newDraft(testDraftID)
	expired.ExpiresAt = time.Now().Add(-time.Hour).Unix()

	testCases := []struct {
		name  string
		draft *entities.CharacterDraft
	}{
		{name: "nil draft", draft: nil},
		{name: "missing ID", draft: &entities.CharacterDraft{PlayerID: testPlayerID}},
		{name: "missing player", draft: &entities.CharacterDraft{ID: testDraftID}},
		{name: "already expired", draft: expired},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: tc.draft})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreateUsesExplicitExpiry() {
	draft := s.newDraft(testDraftID)
	draft.ExpiresAt = time.Now().Add(time.Hour).Unix()

	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	ttl := s.mr.TTL(testDraftKey)
	s.Greater(ttl, 50*time.Minute)
	s.LessOrEqual(ttl, time.Hour)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, characterdraft.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetByPlayerIDCleansDanglingMapping() {
	s.Require().NoError(s.mr.Set(testPlayerKey, "gone"))

	_, err := s.repo.GetByPlayerID(s.ctx, characterdraft.GetByPlayerIDInput{PlayerID: testPlayerID})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists(testPlayerKey))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	draft := s.newDraft(testDraftID)
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	draft.RaceID = "griffon"
	draft.Statistics.Strength = 6
	_, err = s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: draft})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: testDraftID})
	s.Require().NoError(err)
	s.Equal("griffon", got.Draft.RaceID)
	s.Equal(6, got.Draft.Statistics.Strength)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingDraft() {
	_, err := s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: s.newDraft("missing")})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, characterdraft.UpdateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.newDraft(testDraftID)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, characterdraft.DeleteInput{ID: testDraftID})
	s.Require().NoError(err)

	s.False(s.mr.Exists(testDraftKey))
	s.False(s.mr.Exists(testPlayerKey))

	_, err = s.repo.Delete(s.ctx, characterdraft.DeleteInput{ID: testDraftID})
	s.True(errors.IsNotFound(err))
}
