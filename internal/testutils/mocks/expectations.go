// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	characterrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/rpg-content/internal/repositories/character/mock"
	draftrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character_draft"
	draftrepomock "github.com/KirkDiggler/rpg-content/internal/repositories/character_draft/mock"
)

// ExpectDraftGet sets up a mock expectation for getting a draft from repository
func ExpectDraftGet(
	ctx context.Context, mockRepo *draftrepomock.MockRepository,
	draftID string, draft *entities.CharacterDraft, err error,
) {
	var out *draftrepo.GetOutput
	if err == nil {
		out = &draftrepo.GetOutput{Draft: draft}
	}
	mockRepo.EXPECT().
		Get(ctx, draftrepo.GetInput{ID: draftID}).
		Return(out, err)
}

// ExpectDraftUpdate sets up a mock expectation for updating a draft.
// The stored draft is echoed back unchanged.
func ExpectDraftUpdate(ctx context.Context, mockRepo *draftrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.UpdateInput) (*draftrepo.UpdateOutput, error) {
			return &draftrepo.UpdateOutput{Draft: input.Draft}, nil
		})
}

// ExpectDraftDelete sets up a mock expectation for deleting a draft
func ExpectDraftDelete(ctx context.Context, mockRepo *draftrepomock.MockRepository, draftID string, err error) {
	var out *draftrepo.DeleteOutput
	if err == nil {
		out = &draftrepo.DeleteOutput{}
	}
	mockRepo.EXPECT().
		Delete(ctx, draftrepo.DeleteInput{ID: draftID}).
		Return(out, err)
}

// ExpectCharacterCreate sets up a mock expectation for storing a character.
// The character is echoed back unchanged.
func ExpectCharacterCreate(ctx context.Context, mockRepo *characterrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
}
