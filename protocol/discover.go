package protocol

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synclinehq/syncline/discover"
	"github.com/synclinehq/syncline/types"
	"github.com/synclinehq/syncline/utils/logger"
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "discover command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if connectorBinPath == "" {
			return fmt.Errorf("--connector not passed")
		}
		if configPath == "" {
			return fmt.Errorf("--config not passed")
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		configJSON, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read connector config: %s", err)
		}

		worker := discover.NewWorker(connectorBinPath, workspaceRoot)
		logger.Infof("Running discovery worker %s against %s", worker.ID(), connectorBinPath)

		catalog, err := worker.Discover(cmd.Context(), configJSON)
		if err != nil {
			return err
		}

		if len(catalog.Streams) == 0 {
			return errors.New("no streams found in connector")
		}

		logger.LogJSON(types.Message{Type: types.LogMessage, Log: &types.Log{
			Level:   "INFO",
			Message: fmt.Sprintf("discovered %d streams", len(catalog.Streams)),
		}})
		logger.LogJSON(types.Message{Type: types.CatalogMessage, Catalog: catalog})
		if !noSave {
			path, err := worker.LogCatalog(catalog)
			if err != nil {
				return err
			}
			logger.Infof("catalog file created at %s", path)
		}

		return nil
	},
}
