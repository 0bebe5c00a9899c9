package protocol

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synclinehq/syncline/configure"
	"github.com/synclinehq/syncline/types"
	"github.com/synclinehq/syncline/utils"
	"github.com/synclinehq/syncline/utils/logger"
)

var buildInput configure.BuildInput

// initCmd builds the ready-to-edit connection configuration from a discovered
// catalog and the destination's declared capabilities.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "init command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if catalogPath == "" {
			return fmt.Errorf("--catalog not passed")
		}
		if capabilitiesPath == "" {
			return fmt.Errorf("--destination-caps not passed")
		}

		buildInput = configure.BuildInput{Catalog: &types.Catalog{}}
		if err := utils.UnmarshalFile(catalogPath, buildInput.Catalog); err != nil {
			return err
		}
		if err := utils.UnmarshalFile(capabilitiesPath, &buildInput.Destination); err != nil {
			return err
		}
		if operationsPath != "" {
			if err := utils.UnmarshalFile(operationsPath, &buildInput.PersistedOperations); err != nil {
				return err
			}
		}
		if priorPath != "" {
			buildInput.Prior = &types.ConnectionConfiguration{}
			if err := utils.UnmarshalFile(priorPath, buildInput.Prior); err != nil {
				return err
			}
			if err := utils.Validate(buildInput.Prior); err != nil {
				return fmt.Errorf("prior connection state breaks its contract: %s", err)
			}
		}

		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		conn := configure.BuildInitialState(buildInput)

		dropped := len(buildInput.Catalog.Streams) - len(conn.Schema.Streams)
		if dropped > 0 {
			logger.Warnf("%d stream(s) excluded; no sync mode pair supported by both source and destination", dropped)
		}

		logger.LogJSON(conn)
		if !noSave {
			logger.FileLogger(conn, "connection", ".json")
		}

		return nil
	},
}
