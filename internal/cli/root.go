// Package cli wires configuration, the model and the HTTP server into the
// cardio-risk command.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "cardio-risk",
	Short: "Heart disease risk scoring service",
	Long: `cardio-risk scores questionnaire answers against a pre-trained classifier
and maps the result onto a three-tier risk level. Run "serve" for the HTTP
API, or "score" and "inspect" to work with a model from the shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			return os.Setenv("CONFIG_FILE", configFile)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (overrides CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(inspectCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
