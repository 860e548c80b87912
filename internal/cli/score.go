package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/cardio-risk-service/internal/config"
	"github.com/iliyamo/cardio-risk-service/internal/handler"
	"github.com/iliyamo/cardio-risk-service/internal/service"
)

var scoreModelPath string

var scoreCmd = &cobra.Command{
	Use:   "score [payload.json]",
	Short: "Score one JSON payload and print the /predict response",
	Long: `Read a questionnaire payload from the given file, or from stdin when no
file is given, and print the response POST /predict would return.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg = withModelPath(cfg, scoreModelPath)

		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		p, err := loadModel(cmd.Context(), cfg, zap.NewNop())
		if err != nil {
			return err
		}
		return score(service.NewRiskService(p, nil, nil), in, cmd.OutOrStdout())
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreModelPath, "model", "", "model artifact path (overrides MODEL_SOURCE and MODEL_PATH)")
}

// errRejected makes the command exit non-zero after the failure envelope
// has been printed.
var errRejected = errors.New("prediction rejected")

func score(svc *service.RiskService, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	a, err := svc.AssessJSON(in)
	if err != nil {
		if encErr := enc.Encode(handler.FailureResponse(err)); encErr != nil {
			return encErr
		}
		return fmt.Errorf("%w: %v", errRejected, err)
	}
	return enc.Encode(handler.PredictionResponse(a))
}
