package main

import (
	"github.com/spf13/cobra"
)

var (
	regDivision int
	regSlot     int
	regReserve  int
	regUnit     string
	regLevel    int
)

var setRegimentCmd = &cobra.Command{
	Use:   "set-regiment <save>",
	Short: "Replace, retype or vacate a regiment slot",
	Long: `Replace a regiment slot with a freshly synthesized regiment of the given
unit type, update its veterancy level, or vacate it with an empty --unit.
Address a division slot with --division/--slot or a reserve entry with
--reserve.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetRegiment,
}

func init() {
	setRegimentCmd.Flags().IntVar(&regDivision, "division", 0, "division index")
	setRegimentCmd.Flags().IntVar(&regSlot, "slot", 0, "regiment slot within the division")
	setRegimentCmd.Flags().IntVar(&regReserve, "reserve", -1, "reserve index (instead of --division/--slot)")
	setRegimentCmd.Flags().StringVar(&regUnit, "unit", "", "unit template ID; empty vacates the slot")
	setRegimentCmd.Flags().IntVar(&regLevel, "level", 0, "veterancy level; 0 keeps the current one")
}

func runSetRegiment(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadTemplates(); err != nil {
		return err
	}
	if err := a.loadSave(args[0]); err != nil {
		return err
	}

	if regReserve >= 0 {
		err = a.editor.SetReserveRegiment(regReserve, regUnit, regLevel)
	} else {
		err = a.editor.SetRegiment(regDivision, regSlot, regUnit, regLevel)
	}
	if err != nil {
		return err
	}
	return a.editor.WriteSave(args[0])
}
