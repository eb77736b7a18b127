package client

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-content/internal/handlers/content/v1alpha1"
)

var (
	createPlayerID string
	createName     string
	createSeed     string
	draftID        string
	selectRaceID   string
	selectFace     string
)

var createDraftCmd = &cobra.Command{
	Use:   "create-draft",
	Short: "Create a new character draft",
	RunE:  runCreateDraft,
}

var getDraftCmd = &cobra.Command{
	Use:   "get-draft",
	Short: "Get a character draft",
	RunE:  runDraftCommand(v1alpha1.MethodGetDraft, "get draft"),
}

var deleteDraftCmd = &cobra.Command{
	Use:   "delete-draft",
	Short: "Delete a character draft",
	RunE:  runDeleteDraft,
}

var selectRaceCmd = &cobra.Command{
	Use:   "select-race",
	Short: "Select the race of a draft",
	Long: `Select the race of a draft. The previous race's modifiers are reversed
before the new race is applied. The face defaults to the race's first face.`,
	RunE: runSelectRace,
}

var clearRaceCmd = &cobra.Command{
	Use:   "clear-race",
	Short: "Remove the race of a draft",
	RunE:  runDraftCommand(v1alpha1.MethodClearRace, "clear race"),
}

func init() {
	createDraftCmd.Flags().StringVar(&createPlayerID, "player-id", "", "Player ID (required)")
	createDraftCmd.Flags().StringVar(&createName, "name", "", "Character name")
	createDraftCmd.Flags().StringVar(&createSeed, "seed", "", "Statistic seed: standard or rolled")
	_ = createDraftCmd.MarkFlagRequired("player-id")

	for _, cmd := range []*cobra.Command{
		getDraftCmd, deleteDraftCmd, selectRaceCmd, clearRaceCmd, unequipWeaponCmd, finalizeDraftCmd,
	} {
		cmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
		_ = cmd.MarkFlagRequired("draft-id")
	}

	selectRaceCmd.Flags().StringVar(&selectRaceID, "race", "", "Race ID (required, e.g., griffon)")
	selectRaceCmd.Flags().StringVar(&selectFace, "face", "", "Face variant (optional)")
	_ = selectRaceCmd.MarkFlagRequired("race")
}

func runCreateDraft(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodCreateDraft, map[string]any{
		"player_id": createPlayerID,
		"name":      createName,
		"seed":      createSeed,
	})
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	fmt.Printf("Draft created successfully!\n\n")
	printDraft(resp.GetFields()["draft"].GetStructValue())
	return nil
}

func runDeleteDraft(_ *cobra.Command, _ []string) error {
	if _, err := call(v1alpha1.MethodDeleteDraft, map[string]any{"draft_id": draftID}); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	fmt.Printf("Draft %s deleted\n", draftID)
	return nil
}

func runSelectRace(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodSelectRace, map[string]any{
		"draft_id": draftID,
		"race_id":  selectRaceID,
		"face":     selectFace,
	})
	if err != nil {
		return fmt.Errorf("failed to select race: %w", err)
	}

	printDraft(resp.GetFields()["draft"].GetStructValue())
	return nil
}

func runDraftCommand(method, action string) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		resp, err := call(method, map[string]any{"draft_id": draftID})
		if err != nil {
			return fmt.Errorf("failed to %s: %w", action, err)
		}
		printDraft(resp.GetFields()["draft"].GetStructValue())
		return nil
	}
}

var statisticKeys = []string{
	"strength", "perception", "endurance", "charisma", "intelligence",
	"agility", "luck", "melee_damage", "action_points",
}

func printDraft(draft *structpb.Struct) {
	f := draft.GetFields()
	fmt.Printf("Draft ID: %s\n", f["id"].GetStringValue())
	fmt.Printf("Player ID: %s\n", f["player_id"].GetStringValue())
	if name := f["name"].GetStringValue(); name != "" {
		fmt.Printf("Name: %s\n", name)
	}
	if raceID := f["race_id"].GetStringValue(); raceID != "" {
		fmt.Printf("Race: %s (face %s)\n", raceID, f["face"].GetStringValue())
	}
	if kind := f["weapon_kind"].GetStringValue(); kind != "" {
		fmt.Printf("Weapon: %s\n", kind)
	}

	stats := f["statistics"].GetStructValue().GetFields()
	fmt.Printf("Statistics:\n")
	for _, key := range statisticKeys {
		fmt.Printf("   %-13s %.0f\n", key, stats[key].GetNumberValue())
	}
}
