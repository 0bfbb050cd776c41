package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the game's template data",
}

var templatesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Load every reference table and report what is missing",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesVerify,
}

func init() {
	templatesCmd.AddCommand(templatesVerifyCmd)
}

func runTemplatesVerify(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadTemplates(); err != nil {
		if missing := a.editor.MissingTemplates(); len(missing) > 0 {
			fmt.Println("missing tables:")
			for _, name := range missing {
				fmt.Printf("  %s\n", name)
			}
		}
		return err
	}

	fmt.Printf("all tables loaded: %d units, %d skills\n",
		len(a.editor.UnitChoices()), len(a.editor.SkillChoices()))
	return nil
}
