package client

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-content/internal/handlers/content/v1alpha1"
)

var (
	inspectKind        string
	inspectMeleeDamage int
	equipDraftID       string
	equipKind          string
)

var inspectWeaponCmd = &cobra.Command{
	Use:   "inspect-weapon",
	Short: "Report the capability values of a weapon kind",
	Long: `Report the capability values of a weapon kind.

Pass --melee-damage to inspect the weapon as held by a wielder with that
melee damage; without it the weapon is inspected unheld.`,
	RunE: runInspectWeapon,
}

var unequipWeaponCmd = &cobra.Command{
	Use:   "unequip-weapon",
	Short: "Remove the weapon of a draft",
	RunE:  runDraftCommand(v1alpha1.MethodUnequipWeapon, "unequip weapon"),
}

var equipWeaponCmd = &cobra.Command{
	Use:   "equip-weapon",
	Short: "Equip a weapon kind on a draft and inspect it",
	RunE:  runEquipWeapon,
}

func init() {
	inspectWeaponCmd.Flags().StringVar(&inspectKind, "kind", "melee", "Weapon kind")
	inspectWeaponCmd.Flags().IntVar(&inspectMeleeDamage, "melee-damage", 0, "Wielder melee damage (optional)")

	equipWeaponCmd.Flags().StringVar(&equipDraftID, "draft-id", "", "Draft ID (required)")
	equipWeaponCmd.Flags().StringVar(&equipKind, "kind", "melee", "Weapon kind")
	_ = equipWeaponCmd.MarkFlagRequired("draft-id")
}

func runInspectWeapon(cmd *cobra.Command, _ []string) error {
	fields := map[string]any{"kind": inspectKind}
	if cmd.Flags().Changed("melee-damage") {
		fields["wielder"] = map[string]any{"melee_damage": inspectMeleeDamage}
	}

	resp, err := call(v1alpha1.MethodInspectWeapon, fields)
	if err != nil {
		return fmt.Errorf("failed to inspect weapon: %w", err)
	}

	printWeapon(resp.GetFields()["weapon"].GetStructValue())
	return nil
}

func runEquipWeapon(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodEquipWeapon, map[string]any{
		"draft_id": equipDraftID,
		"kind":     equipKind,
	})
	if err != nil {
		return fmt.Errorf("failed to equip weapon: %w", err)
	}
	printDraft(resp.GetFields()["draft"].GetStructValue())

	resp, err = call(v1alpha1.MethodInspectDraftWeapon, map[string]any{"draft_id": equipDraftID})
	if err != nil {
		return fmt.Errorf("failed to inspect weapon: %w", err)
	}
	fmt.Println()
	printWeapon(resp.GetFields()["weapon"].GetStructValue())

	return nil
}

func printWeapon(weapon *structpb.Struct) {
	f := weapon.GetFields()
	rng := f["damage_range"].GetStructValue().GetFields()

	fmt.Printf("Weapon: %s (wielded: %t)\n", f["kind"].GetStringValue(), f["wielded"].GetBoolValue())
	fmt.Printf("   AP cost: %.0f\n", f["action_point_cost"].GetNumberValue())
	fmt.Printf("   Damage type: %s\n", f["damage_type"].GetStringValue())
	fmt.Printf("   Damage base: %.0f\n", f["damage_base"].GetNumberValue())
	fmt.Printf("   Damage range: %.0f-%.0f\n", rng["min"].GetNumberValue(), rng["max"].GetNumberValue())
}
