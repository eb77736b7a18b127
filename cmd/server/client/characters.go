package client

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-content/internal/handlers/content/v1alpha1"
)

var (
	characterID  string
	listPlayerID string
)

var finalizeDraftCmd = &cobra.Command{
	Use:   "finalize-draft",
	Short: "Turn a complete draft into a character",
	Long: `Turn a complete draft into a character. The draft needs a name and a
race. The draft is removed once the character is stored.`,
	RunE: runFinalizeDraft,
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character",
	Short: "Get a finalized character",
	RunE:  runGetCharacter,
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List a player's characters",
	RunE:  runListCharacters,
}

func init() {
	getCharacterCmd.Flags().StringVar(&characterID, "character-id", "", "Character ID (required)")
	_ = getCharacterCmd.MarkFlagRequired("character-id")

	listCharactersCmd.Flags().StringVar(&listPlayerID, "player-id", "", "Player ID (required)")
	_ = listCharactersCmd.MarkFlagRequired("player-id")
}

func runFinalizeDraft(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodFinalizeDraft, map[string]any{"draft_id": draftID})
	if err != nil {
		return fmt.Errorf("failed to finalize draft: %w", err)
	}

	fmt.Printf("Character created successfully!\n\n")
	printCharacter(resp.GetFields()["character"].GetStructValue())
	if !resp.GetFields()["draft_deleted"].GetBoolValue() {
		fmt.Printf("\nWarning: draft %s was not removed\n", draftID)
	}
	return nil
}

func runGetCharacter(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodGetCharacter, map[string]any{"character_id": characterID})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	printCharacter(resp.GetFields()["character"].GetStructValue())
	return nil
}

func runListCharacters(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodListCharacters, map[string]any{"player_id": listPlayerID})
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	characters := resp.GetFields()["characters"].GetListValue().GetValues()
	fmt.Printf("Found %d characters:\n", len(characters))
	for i, c := range characters {
		f := c.GetStructValue().GetFields()
		fmt.Printf("%d. %s (%s) - %s\n", i+1,
			f["name"].GetStringValue(),
			f["id"].GetStringValue(),
			f["race_id"].GetStringValue())
	}
	return nil
}

func printCharacter(char *structpb.Struct) {
	f := char.GetFields()
	fmt.Printf("Character ID: %s\n", f["id"].GetStringValue())
	fmt.Printf("Player ID: %s\n", f["player_id"].GetStringValue())
	fmt.Printf("Name: %s\n", f["name"].GetStringValue())
	fmt.Printf("Race: %s (face %s)\n", f["race_id"].GetStringValue(), f["face"].GetStringValue())
	if kind := f["weapon_kind"].GetStringValue(); kind != "" {
		fmt.Printf("Weapon: %s\n", kind)
	}

	stats := f["statistics"].GetStructValue().GetFields()
	fmt.Printf("Statistics:\n")
	for _, key := range statisticKeys {
		fmt.Printf("   %-13s %.0f\n", key, stats[key].GetNumberValue())
	}
}
