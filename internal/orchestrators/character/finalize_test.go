package character_test

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-content/internal/content/race"
	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character"
	charactersvc "github.com/KirkDiggler/rpg-content/internal/services/character"
	"github.com/KirkDiggler/rpg-content/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-content/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) completeDraft() *entities.CharacterDraft {
	return builders.NewCharacterDraftBuilder().
		WithID("draft-1").
		WithPlayerID("player-1").
		AsComplete().
		WithName("Talon").
		Build()
}

func (s *OrchestratorTestSuite) expectCharacterCreate() {
	mocks.ExpectCharacterCreate(s.ctx, s.mockCharacterRepo)
}

func (s *OrchestratorTestSuite) TestFinalizeDraft() {
	draft := s.completeDraft()
	s.expectGet(draft)
	s.expectCharacterCreate()
	mocks.ExpectDraftDelete(s.ctx, s.mockDraftRepo, "draft-1", nil)

	out, err := s.orchestrator.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft-1"})
	s.Require().NoError(err)
	s.True(out.DraftDeleted)

	char := out.Character
	s.Equal("draft_1", char.ID)
	s.Equal("player-1", char.PlayerID)
	s.Equal("Talon", char.Name)
	s.Equal(race.GriffonID, char.RaceID)
	s.Equal("griffon", char.Face)
	s.Equal("melee", char.WeaponKind)
	s.Equal(draft.Statistics, char.Statistics)
	s.Equal(6, char.Statistics.Strength)
	s.Equal(s.now.Unix(), char.CreatedAt)

	s.Equal([]string{"draft_1"}, s.finalized)
	s.Empty(s.toggles)
}

func (s *OrchestratorTestSuite) TestFinalizeDraft_DraftDeleteFailureIsReported() {
	s.expectGet(s.completeDraft())
	s.expectCharacterCreate()
	mocks.ExpectDraftDelete(s.ctx, s.mockDraftRepo, "draft-1", errors.Internal("connection reset"))

	out, err := s.orchestrator.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft-1"})
	s.Require().NoError(err)
	s.False(out.DraftDeleted)
	s.NotNil(out.Character)
}

func (s *OrchestratorTestSuite) TestFinalizeDraft_Incomplete() {
	testCases := []struct {
		name    string
		mutate  func(d *entities.CharacterDraft)
		missing []string
	}{
		{
			name:    "no name",
			mutate:  func(d *entities.CharacterDraft) { d.Name = "" },
			missing: []string{"name"},
		},
		{
			name:    "no race",
			mutate:  func(d *entities.CharacterDraft) { d.RaceID, d.Face = "", "" },
			missing: []string{"race"},
		},
		{
			name: "nothing chosen",
			mutate: func(d *entities.CharacterDraft) {
				d.Name, d.RaceID, d.Face = "", "", ""
			},
			missing: []string{"name", "race"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			draft := s.completeDraft()
			tc.mutate(draft)
			s.expectGet(draft)

			out, err := s.orchestrator.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft-1"})
			s.Require().Error(err)
			s.Nil(out)
			s.True(errors.IsFailedPrecondition(err))

			var e *errors.Error
			s.Require().True(errors.As(err, &e))
			s.Equal(tc.missing, e.Meta["missing_steps"])
		})
	}
}

func (s *OrchestratorTestSuite) TestFinalizeDraft_RaceUnregistered() {
	draft := s.completeDraft()
	draft.RaceID = "centaur"
	s.expectGet(draft)

	_, err := s.orchestrator.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft-1"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFinalizeDraft_CreateFailureKeepsDraft() {
	s.expectGet(s.completeDraft())
	s.mockCharacterRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("character already exists"))

	_, err := s.orchestrator.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft-1"})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Empty(s.finalized)
}

func (s *OrchestratorTestSuite) TestGetCharacter() {
	char := &entities.Character{ID: "char-1", PlayerID: "player-1"}
	s.mockCharacterRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char-1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)

	out, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Equal(char, out.Character)

	_, err = s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	chars := []*entities.Character{{ID: "char-1"}, {ID: "char-2"}}
	s.mockCharacterRepo.EXPECT().
		ListByPlayerID(s.ctx, characterrepo.ListByPlayerIDInput{PlayerID: "player-1"}).
		Return(&characterrepo.ListByPlayerIDOutput{Characters: chars}, nil)

	out, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(chars, out.Characters)

	_, err = s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
