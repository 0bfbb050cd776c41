package main

import (
	"github.com/spf13/cobra"
)

var (
	resCash     int
	resFood     int
	resAmmo     int
	resManpower int
)

var setResourcesCmd = &cobra.Command{
	Use:   "set-resources <save>",
	Short: "Set player resources and write the save back",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetResources,
}

func init() {
	setResourcesCmd.Flags().IntVar(&resCash, "cash", -1, "cash amount")
	setResourcesCmd.Flags().IntVar(&resFood, "food", -1, "food amount")
	setResourcesCmd.Flags().IntVar(&resAmmo, "ammo", -1, "ammo amount")
	setResourcesCmd.Flags().IntVar(&resManpower, "manpower", -1, "manpower pool")
}

func runSetResources(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadSave(args[0]); err != nil {
		return err
	}

	// Unset flags keep the save's current values.
	player := a.editor.Document().PlayerSaveData
	cash, food, ammo, manpower := player.Cash, player.Food, player.Ammo, player.Manpower
	if cmd.Flags().Changed("cash") {
		cash = resCash
	}
	if cmd.Flags().Changed("food") {
		food = resFood
	}
	if cmd.Flags().Changed("ammo") {
		ammo = resAmmo
	}
	if cmd.Flags().Changed("manpower") {
		manpower = resManpower
	}

	if err := a.editor.SetResources(cash, food, ammo, manpower); err != nil {
		return err
	}
	return a.editor.WriteSave(args[0])
}
