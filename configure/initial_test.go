package configure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synclinehq/syncline/constants"
	"github.com/synclinehq/syncline/types"
)

func buildFixtureInput() BuildInput {
	return BuildInput{
		Catalog: &types.Catalog{Streams: []*types.Stream{
			types.NewStream("users", "public").
				WithSyncModes(types.FULLREFRESH, types.INCREMENTAL).
				WithDefaultCursorField("updated_at").
				WithSourceDefinedPrimaryKey([]string{"id"}),
			types.NewStream("events", "public").
				WithSyncModes(types.FULLREFRESH),
		}},
		Destination: types.DestinationCapabilities{
			SupportedPairs: types.NewSet(
				types.SyncModePair{Source: types.INCREMENTAL, Destination: types.APPENDDEDUP},
			),
			SupportsNormalization: true,
			SupportsDbt:           true,
		},
		PersistedOperations: []types.Operation{
			{
				ID:            "norm-1",
				Operator:      types.OperatorNormalization,
				Normalization: &types.NormalizationConfig{Option: types.NormalizationBasic},
			},
			{
				ID:       "dbt-1",
				Name:     "daily rollup",
				Operator: types.OperatorDbt,
				Dbt:      &types.DbtConfig{DockerImage: constants.DefaultDbtDockerImage},
			},
			{
				ID:       "dbt-2",
				Name:     "cleanup",
				Operator: types.OperatorDbt,
				Dbt:      &types.DbtConfig{DockerImage: constants.DefaultDbtDockerImage},
			},
		},
	}
}

func TestBuildInitialState_Defaults(t *testing.T) {
	conn := BuildInitialState(BuildInput{
		Catalog:     &types.Catalog{},
		Destination: types.CapabilitiesFromDestinationSyncModes(types.OVERWRITE),
	})

	require.NotNil(t, conn.Schedule)
	require.NotNil(t, conn.Schedule.Interval)
	assert.Equal(t, constants.DefaultScheduleUnits, conn.Schedule.Interval.Units)
	assert.Equal(t, constants.DefaultScheduleTimeUnit, conn.Schedule.Interval.TimeUnit)
	assert.Equal(t, constants.DefaultNamespaceDefinition, conn.NamespaceDefinition)
	assert.Equal(t, constants.NamespaceFormatSourceToken, conn.NamespaceFormat)
	assert.Nil(t, conn.Normalization, "Destination without normalization support gets none")
	assert.Nil(t, conn.Transformations, "Destination without dbt support gets none")
}

func TestBuildInitialState_SeedsPostLoadSteps(t *testing.T) {
	conn := BuildInitialState(buildFixtureInput())

	require.NotNil(t, conn.Normalization)
	assert.Equal(t, types.NormalizationBasic, *conn.Normalization)

	require.Equal(t, 2, len(conn.Transformations), "Only dbt kind operations seed the editable list")
	assert.Equal(t, "dbt-1", conn.Transformations[0].ID)
	assert.Equal(t, "dbt-2", conn.Transformations[1].ID, "Persisted order survives")
}

func TestBuildInitialState_FreshVersusEditNormalization(t *testing.T) {
	t.Run("fresh connection gets the default option", func(t *testing.T) {
		in := buildFixtureInput()
		in.PersistedOperations = nil
		in.Prior = nil

		conn := BuildInitialState(in)

		require.NotNil(t, conn.Normalization)
		assert.Equal(t, constants.DefaultNormalizationOption, *conn.Normalization)
	})

	t.Run("edit with normalization explicitly absent stays absent", func(t *testing.T) {
		in := buildFixtureInput()
		in.PersistedOperations = Transformations(in.PersistedOperations)
		in.Prior = &types.ConnectionConfiguration{Prefix: "stg_"}

		conn := BuildInitialState(in)

		assert.Nil(t, conn.Normalization)
		assert.Equal(t, "stg_", conn.Prefix)
	})
}

func TestBuildInitialState_PriorTopLevelFields(t *testing.T) {
	in := buildFixtureInput()
	in.Prior = &types.ConnectionConfiguration{
		Schedule:            &types.Schedule{Manual: true},
		Prefix:              "archive_",
		NamespaceDefinition: types.NamespaceCustomFormat,
		NamespaceFormat:     "analytics_${SOURCE_NAMESPACE}",
	}

	conn := BuildInitialState(in)

	assert.True(t, conn.Schedule.Manual)
	assert.Equal(t, "archive_", conn.Prefix)
	assert.Equal(t, types.NamespaceCustomFormat, conn.NamespaceDefinition)
	assert.Equal(t, "analytics_${SOURCE_NAMESPACE}", conn.NamespaceFormat)
}

func TestBuildInitialState_Determinism(t *testing.T) {
	in := buildFixtureInput()

	first := BuildInitialState(in)
	second := BuildInitialState(in)

	assert.Equal(t, first, second, "Identical inputs must yield identical output on repeated invocation")
	assert.Equal(t, 1, len(first.Schema.Streams), "The full refresh only stream has no supported pair and is dropped")
	assert.Equal(t, types.APPENDDEDUP, first.Schema.Streams[0].Config.DestinationSyncMode)
	assert.Equal(t, []string{"updated_at"}, first.Schema.Streams[0].Config.CursorField)
}
