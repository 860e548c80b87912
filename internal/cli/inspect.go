package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/cardio-risk-service/internal/config"
	"github.com/iliyamo/cardio-risk-service/internal/features"
	"github.com/iliyamo/cardio-risk-service/internal/predictor"
)

var inspectModelPath string

// inspection is what inspect prints.
type inspection struct {
	predictor.Info
	Source  string   `json:"source"`
	Columns []string `json:"columns"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the configured model and describe it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg = withModelPath(cfg, inspectModelPath)

		p, err := loadModel(cmd.Context(), cfg, zap.NewNop())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(inspection{
			Info:    predictor.Describe(p),
			Source:  cfg.ModelLocation(),
			Columns: features.ColumnNames(),
		})
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectModelPath, "model", "", "model artifact path (overrides MODEL_SOURCE and MODEL_PATH)")
}
