package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	offDivision int
	offReserve  int
	offLevel    int
	offPoints   int
	offSkills   []string
	offCreate   bool
	offDelete   bool
)

var setOfficerCmd = &cobra.Command{
	Use:   "set-officer <save>",
	Short: "Create, update or delete a division or reserve officer",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetOfficer,
}

func init() {
	setOfficerCmd.Flags().IntVar(&offDivision, "division", 0, "division index")
	setOfficerCmd.Flags().IntVar(&offReserve, "reserve", -1, "reserve officer index (instead of --division)")
	setOfficerCmd.Flags().IntVar(&offLevel, "level", 1, "officer level")
	setOfficerCmd.Flags().IntVar(&offPoints, "points", 0, "unspent skill points")
	setOfficerCmd.Flags().StringSliceVar(&offSkills, "skills", nil, "skill IDs (at most 5)")
	setOfficerCmd.Flags().BoolVar(&offCreate, "create", false, "create a blank officer if the slot is vacant")
	setOfficerCmd.Flags().BoolVar(&offDelete, "delete", false, "delete the officer instead of updating")
}

func runSetOfficer(cmd *cobra.Command, args []string) error {
	if offCreate && offDelete {
		return fmt.Errorf("--create and --delete are mutually exclusive")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadSave(args[0]); err != nil {
		return err
	}

	if offReserve >= 0 {
		err = runReserveOfficer(a)
	} else {
		err = runDivisionOfficer(a)
	}
	if err != nil {
		return err
	}
	return a.editor.WriteSave(args[0])
}

func runDivisionOfficer(a *app) error {
	if offDelete {
		return a.editor.DeleteOfficer(offDivision)
	}
	if offCreate {
		if err := a.editor.CreateOfficer(offDivision); err != nil {
			return err
		}
	}
	return a.editor.UpdateOfficer(offDivision, offLevel, offPoints, offSkills)
}

func runReserveOfficer(a *app) error {
	if offDelete {
		return a.editor.DeleteReserveOfficer(offReserve)
	}
	if offCreate {
		if err := a.editor.CreateReserveOfficer(offReserve); err != nil {
			return err
		}
	}
	return a.editor.UpdateReserveOfficer(offReserve, offLevel, offPoints, offSkills)
}
