package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-content/internal/handlers/content/v1alpha1"
)

var (
	playableOnly bool
	getRaceID    string
)

var listRacesCmd = &cobra.Command{
	Use:   "list-races",
	Short: "List registered races",
	RunE:  runListRaces,
}

var getRaceCmd = &cobra.Command{
	Use:   "get-race",
	Short: "Get a race with its faces and sprite sheet",
	RunE:  runGetRace,
}

func init() {
	listRacesCmd.Flags().BoolVar(&playableOnly, "playable-only", true, "Only list races offered at character creation")

	getRaceCmd.Flags().StringVar(&getRaceID, "race", "", "Race ID (required, e.g., griffon)")
	_ = getRaceCmd.MarkFlagRequired("race")
}

func runListRaces(_ *cobra.Command, _ []string) error {
	log.Printf("Requesting races from %s...", serverAddr)

	resp, err := call(v1alpha1.MethodListRaces, map[string]any{"playable_only": playableOnly})
	if err != nil {
		return fmt.Errorf("failed to list races: %w", err)
	}

	races := resp.GetFields()["races"].GetListValue().GetValues()
	fmt.Printf("Found %d races:\n\n", len(races))
	for _, r := range races {
		printRace(r.GetStructValue())
		fmt.Println()
	}

	return nil
}

func runGetRace(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodGetRace, map[string]any{"race_id": getRaceID})
	if err != nil {
		return fmt.Errorf("failed to get race: %w", err)
	}

	printRace(resp.GetFields()["race"].GetStructValue())
	return nil
}

func printRace(race *structpb.Struct) {
	f := race.GetFields()
	fmt.Printf("%s (playable: %t)\n", f["id"].GetStringValue(), f["playable"].GetBoolValue())

	fmt.Printf("   Faces:")
	for _, face := range f["faces"].GetListValue().GetValues() {
		fmt.Printf(" %s", face.GetStringValue())
	}
	fmt.Println()

	sheet := f["sprite_sheet"].GetStructValue().GetFields()
	fmt.Printf("   Sprites: clone of %s, base %s, overlay %s\n",
		sheet["clone_of"].GetStringValue(),
		sheet["base"].GetStringValue(),
		sheet["overlay"].GetStringValue())
}
