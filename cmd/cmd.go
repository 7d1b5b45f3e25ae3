// cmd.go - Haupt-CLI mit allen Commands
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/7blacky7/s2d2s/envconfig"
)

// appendEnvDocs - Haengt die Environment-Variablen an die Usage-Ausgabe an
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "s2d2s",
		Short:         "Rearrange image blocks between space and depth",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: envconfig.LogLevel()})
			slog.SetDefault(slog.New(handler))
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	spaceToDepthCmd := newSpaceToDepthCmd()
	roundtripCmd := newRoundtripCmd()
	envCmd := newEnvCmd()

	envVars := envconfig.AsMap()
	for _, cmd := range []*cobra.Command{spaceToDepthCmd, roundtripCmd} {
		appendEnvDocs(cmd, []envconfig.EnvVar{
			envVars["S2D2S_BLOCK_SIZE"],
			envVars["S2D2S_CROP"],
			envVars["S2D2S_NORMALIZE"],
			envVars["S2D2S_DEBUG"],
		})
	}

	rootCmd.AddCommand(
		spaceToDepthCmd,
		roundtripCmd,
		envCmd,
	)

	return rootCmd
}
