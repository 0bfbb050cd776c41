package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
)

var showCmd = &cobra.Command{
	Use:   "show <save>",
	Short: "Print a save's resources, divisions and reserves",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	// Templates are optional here; without them unit IDs print unresolved.
	if err := a.loadTemplates(); err != nil {
		a.logs.Logger().Warn("templates unavailable, showing raw unit IDs", "error", err)
	}
	if err := a.loadSave(args[0]); err != nil {
		return err
	}

	player := a.editor.Document().PlayerSaveData
	fmt.Printf("cash %d  food %d  ammo %d  manpower %d\n",
		player.Cash, player.Food, player.Ammo, player.Manpower)

	for d, division := range player.ArmySaveData.Divisions {
		fmt.Printf("division %d\n", d)
		if o := division.OfficerSave; o != nil {
			fmt.Printf("  officer: %s %s (level %d, %d skill points)\n",
				o.Name, o.LastName, o.Level, o.SkillPointsAvailable)
		}
		for s, reg := range division.Regiments {
			fmt.Printf("  slot %d: %s\n", s, describeRegiment(a, reg))
		}
	}

	for i, reg := range player.ArmySaveData.ReserveRegiments {
		fmt.Printf("reserve %d: %s\n", i, describeRegiment(a, reg))
	}
	for i, o := range player.ArmySaveData.ReserveOfficers {
		if o == nil {
			fmt.Printf("reserve officer %d: (empty)\n", i)
			continue
		}
		fmt.Printf("reserve officer %d: %s %s (level %d)\n", i, o.Name, o.LastName, o.Level)
	}
	return nil
}

func describeRegiment(a *app, reg *core.Regiment) string {
	if reg == nil {
		return "(empty)"
	}
	name := reg.UnitID
	if a.editor.TemplatesReady() {
		name = a.editor.ResolveUnitDisplayName(reg.UnitID)
	}
	return fmt.Sprintf("%s  level %d  manpower %d/%d  supply %d",
		name, reg.CurrentLevel, reg.Manpower, reg.MaxManpower, reg.Supply)
}
