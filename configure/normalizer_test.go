package configure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synclinehq/syncline/types"
)

func TestNormalizeSchema(t *testing.T) {
	destination := types.DestinationCapabilities{
		SupportedPairs: types.NewSet(
			types.SyncModePair{Source: types.INCREMENTAL, Destination: types.APPENDDEDUP},
		),
	}

	t.Run("unresolvable stream is dropped silently", func(t *testing.T) {
		catalog := &types.Catalog{Streams: []*types.Stream{
			types.NewStream("users", "public").WithSyncModes(types.FULLREFRESH, types.INCREMENTAL),
			types.NewStream("logs", "public").WithSyncModes(types.FULLREFRESH),
			types.NewStream("orders", "public").WithSyncModes(types.INCREMENTAL),
		}}

		schema := NormalizeSchema(catalog, destination)

		assert.Equal(t, len(catalog.Streams)-1, len(schema.Streams),
			"Exactly the full refresh only stream is excluded")
		assert.Equal(t, "users", schema.Streams[0].Name())
		assert.Equal(t, "orders", schema.Streams[1].Name(), "Relative order is preserved")
	})

	t.Run("ids are raw catalog positions", func(t *testing.T) {
		catalog := &types.Catalog{Streams: []*types.Stream{
			types.NewStream("logs", "public").WithSyncModes(types.FULLREFRESH),
			types.NewStream("users", "public").WithSyncModes(types.INCREMENTAL),
			types.NewStream("orders", "public").WithSyncModes(types.INCREMENTAL),
		}}

		schema := NormalizeSchema(catalog, destination)

		assert.Equal(t, 2, len(schema.Streams))
		assert.Equal(t, "1", schema.Streams[0].ID,
			"Ids index into the discovery snapshot, not the filtered output")
		assert.Equal(t, "2", schema.Streams[1].ID)
	})

	t.Run("resolution and cursor repair applied per stream", func(t *testing.T) {
		catalog := &types.Catalog{Streams: []*types.Stream{
			types.NewStream("users", "public").
				WithSyncModes(types.INCREMENTAL).
				WithDefaultCursorField("updated_at"),
		}}

		schema := NormalizeSchema(catalog, destination)

		assert.Equal(t, 1, len(schema.Streams))
		configured := schema.Streams[0]
		assert.Equal(t, types.INCREMENTAL, configured.Config.SyncMode)
		assert.Equal(t, types.APPENDDEDUP, configured.Config.DestinationSyncMode)
		assert.Equal(t, []string{"updated_at"}, configured.Config.CursorField)
	})

	t.Run("nil and empty catalogs produce an empty schema", func(t *testing.T) {
		assert.Empty(t, NormalizeSchema(nil, destination).Streams)
		assert.Empty(t, NormalizeSchema(&types.Catalog{}, destination).Streams)
	})
}
