package protocol

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/synclinehq/syncline/constants"
	"github.com/synclinehq/syncline/utils"
	"github.com/synclinehq/syncline/utils/logger"
)

var (
	connectorBinPath string
	configPath       string
	catalogPath      string
	capabilitiesPath string
	operationsPath   string
	connectionPath   string
	priorPath        string
	workspaceID      string
	workspaceRoot    string
	noSave           bool

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "syncline",
	Short: "root command",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// set global variables
		configFolder := utils.Ternary(!noSave && connectionPath != "", filepath.Dir(connectionPath), os.TempDir()).(string)
		viper.Set(constants.ConfigFolder, configFolder)
		viper.SetDefault(constants.CatalogPath, filepath.Join(viper.GetString(constants.ConfigFolder), "catalog.json"))
		viper.SetDefault(constants.ConnectionPath, filepath.Join(viper.GetString(constants.ConfigFolder), "connection.json"))

		// logger uses CONFIG_FOLDER
		logger.Init()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'syncline --help' to display usage guide", args[0])
		}

		return nil
	},
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	commands = append(commands, discoverCmd, initCmd, validateCmd)
	RootCmd.AddCommand(commands...)

	RootCmd.PersistentFlags().StringVarP(&connectorBinPath, "connector", "", "", "Path to the source connector binary (discover)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "", "Config for the source connector (discover)")
	RootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "", "", "Path to a discovered catalog document")
	RootCmd.PersistentFlags().StringVarP(&capabilitiesPath, "destination-caps", "", "", "Path to the destination capability descriptor")
	RootCmd.PersistentFlags().StringVarP(&operationsPath, "operations", "", "", "(Optional) Path to previously persisted operations")
	RootCmd.PersistentFlags().StringVarP(&connectionPath, "connection", "", "", "Path to an edited connection configuration document")
	RootCmd.PersistentFlags().StringVarP(&priorPath, "prior", "", "", "(Optional) Path to the persisted connection state when editing")
	RootCmd.PersistentFlags().StringVarP(&workspaceID, "workspace-id", "", "", "(Optional) Workspace id stamped on synthesized operations")
	RootCmd.PersistentFlags().StringVarP(&workspaceRoot, "workspace", "", filepath.Join(os.TempDir(), "syncline"), "(Optional) Root directory for discovery workspaces")
	RootCmd.PersistentFlags().BoolVarP(&noSave, "no-save", "", false, "(Optional) Flag to skip logging artifacts in file")

	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
