package main

import (
	"github.com/spf13/cobra"
)

var (
	configDir string
	gameDir   string
)

var rootCmd = &cobra.Command{
	Use:   "moc-save-editor",
	Short: "Master of Command save editor",
	Long:  `Edits Master of Command campaign saves: regiments, officers and player resources, synthesized from the game's own template data.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding the editor config file")
	rootCmd.PersistentFlags().StringVar(&gameDir, "game-dir", "", "game data directory (overrides the configured one)")

	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setResourcesCmd)
	rootCmd.AddCommand(setRegimentCmd)
	rootCmd.AddCommand(setOfficerCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(skillsCmd)
}
