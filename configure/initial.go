package configure

import (
	"github.com/synclinehq/syncline/constants"
	"github.com/synclinehq/syncline/types"
)

// BuildInput is everything the initial state is a function of. Identical
// inputs must yield identical output: downstream rendering keys off output
// identity, so recomputation is triggered by input changes, never by call
// order.
type BuildInput struct {
	Catalog             *types.Catalog
	Destination         types.DestinationCapabilities
	PersistedOperations []types.Operation

	// Prior is the persisted connection state when editing an existing
	// connection; nil means a fresh, never-before-configured connection.
	Prior *types.ConnectionConfiguration
}

// BuildInitialState produces the ready-to-edit configuration: the normalized
// sync schema plus defaulted top level fields, with post-load steps seeded
// from the persisted operations where the destination supports them.
func BuildInitialState(in BuildInput) *types.ConnectionConfiguration {
	conn := &types.ConnectionConfiguration{
		Schedule: &types.Schedule{
			Interval: &types.ScheduleInterval{
				Units:    constants.DefaultScheduleUnits,
				TimeUnit: constants.DefaultScheduleTimeUnit,
			},
		},
		NamespaceDefinition: constants.DefaultNamespaceDefinition,
		NamespaceFormat:     constants.NamespaceFormatSourceToken,
		Schema:              NormalizeSchema(in.Catalog, in.Destination),
	}

	if in.Prior != nil {
		if in.Prior.Schedule != nil {
			conn.Schedule = in.Prior.Schedule
		}
		conn.Prefix = in.Prior.Prefix
		if in.Prior.NamespaceDefinition != "" {
			conn.NamespaceDefinition = in.Prior.NamespaceDefinition
		}
		if in.Prior.NamespaceFormat != "" {
			conn.NamespaceFormat = in.Prior.NamespaceFormat
		}
	}

	if in.Destination.SupportsDbt {
		conn.Transformations = Transformations(in.PersistedOperations)
	}

	if in.Destination.SupportsNormalization {
		conn.Normalization = PersistedNormalization(in.PersistedOperations)
		if conn.Normalization == nil && in.Prior == nil {
			// fresh connection; an edit with normalization explicitly absent
			// stays absent
			option := constants.DefaultNormalizationOption
			conn.Normalization = &option
		}
	}

	return conn
}
