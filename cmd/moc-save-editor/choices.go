package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List selectable unit types",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List selectable officer skills",
	Args:  cobra.NoArgs,
	RunE:  runSkills,
}

func runUnits(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadTemplates(); err != nil {
		return err
	}
	for _, c := range a.editor.UnitChoices() {
		fmt.Printf("%-40s %s\n", c.ID, c.Display)
	}
	return nil
}

func runSkills(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadTemplates(); err != nil {
		return err
	}
	for _, c := range a.editor.SkillChoices() {
		fmt.Printf("%-40s %s\n", c.ID, c.Display)
	}
	return nil
}
