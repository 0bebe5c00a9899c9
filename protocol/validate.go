package protocol

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synclinehq/syncline/configure"
	"github.com/synclinehq/syncline/types"
	"github.com/synclinehq/syncline/utils/logger"
)

// connectionStatus folds a violation list into the protocol status row an
// orchestrator consumes instead of parsing violations itself.
func connectionStatus(violations []configure.Violation) types.Message {
	row := &types.StatusRow{Status: types.ConnectionSucceed}
	if len(violations) > 0 {
		row.Status = types.ConnectionFailed
		row.Message = fmt.Sprintf("connection configuration rejected with %d violation(s)", len(violations))
	}

	return types.Message{Type: types.ConnectionStatusMessage, ConnectionStatus: row}
}

// validateCmd runs the ruleset over an edited connection document. Violations
// are data, not process failure: the command exits zero either way and prints
// the violation list for the editing surface to attribute.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "validate command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if connectionPath == "" {
			return fmt.Errorf("--connection not passed")
		}

		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		raw, err := os.ReadFile(connectionPath)
		if err != nil {
			return fmt.Errorf("failed to read connection document: %s", err)
		}

		_, violations := configure.ValidateConnectionDocument(raw)
		if len(violations) == 0 {
			logger.Info("connection configuration accepted")
		} else {
			logger.Warnf("connection configuration rejected with %d violation(s)", len(violations))
		}

		logger.LogJSON(connectionStatus(violations))
		logger.LogJSON(violations)
		return nil
	},
}
