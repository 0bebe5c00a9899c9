package constants

import "github.com/synclinehq/syncline/types"

// Process-wide immutable defaults; never mutated at runtime.
const (
	// DefaultScheduleUnits with DefaultScheduleTimeUnit is the schedule a
	// fresh connection starts with when the caller supplies none.
	DefaultScheduleUnits    int64                  = 24
	DefaultScheduleTimeUnit types.ScheduleTimeUnit = types.TimeUnitHours

	DefaultNamespaceDefinition = types.NamespaceSource

	// NamespaceFormatSourceToken is substituted by the destination at write
	// time; the engine treats it as an opaque default.
	NamespaceFormatSourceToken = "${SOURCE_NAMESPACE}"

	DefaultNormalizationOption = types.NormalizationBasic

	DefaultDbtDockerImage = "fishtownanalytics/dbt:0.19.1"

	// UnassignedOperationID marks an operation the persistence layer has not
	// seen yet.
	UnassignedOperationID = ""
)

// Viper keys shared by the CLI commands
const (
	ConfigFolder   = "CONFIG_FOLDER"
	CatalogPath    = "CATALOG_PATH"
	ConnectionPath = "CONNECTION_PATH"
)
