package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage solver settings",
	Long: `View and override the parameters written to the solver settings file.

Overrides merge key-wise onto the current settings: keys not named keep
their values. Keys outside the known vocabulary are passed through to
the solver with a warning, since the solver accepts more parameters than
the engine documents.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current solver settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set key=value [key=value...]",
	Short: "Override solver settings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if learnService == nil {
		return errors.New("learn service not configured")
	}

	settings := learnService.Settings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cmd.Println("Current solver settings:")
	for _, k := range keys {
		cmd.Printf("  %s = %s\n", k, settings[k].Render())
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if learnService == nil {
		return errors.New("learn service not configured")
	}

	settings, err := parseSettingFlags(args)
	if err != nil {
		return err
	}

	unknown := learnService.SetSettings(settings)
	for _, k := range unknown {
		cmd.PrintErrf("warning: %q is not a known solver parameter; it will be passed through\n", k)
	}
	cmd.Printf("Updated %d setting(s).\n", len(settings))
	return nil
}
