package configure

import (
	"github.com/synclinehq/syncline/types"
	"github.com/synclinehq/syncline/utils/logger"
)

// NormalizeSchema applies sync mode resolution across a whole raw catalog.
//
// Ids are the zero based positions in the raw catalog, assigned before any
// stream is dropped; they are correlation keys for one discovery snapshot
// only. Unresolvable streams are excluded silently: an unconfigurable stream
// is not a user mistake, so it never becomes a validation error. Relative
// order of the surviving streams is preserved.
func NormalizeSchema(catalog *types.Catalog, destination types.DestinationCapabilities) types.SyncSchema {
	schema := types.SyncSchema{Streams: []*types.ConfiguredStream{}}
	if catalog == nil {
		return schema
	}

	for position, stream := range catalog.Streams {
		configured := stream.Wrap(position)
		if !VerifySupportedSyncModes(configured, destination) {
			logger.Debugf("Skipping stream %s; no sync mode pair supported by both source and destination", stream.ID())
			continue
		}

		RepairCursorField(configured)
		schema.Streams = append(schema.Streams, configured)
	}

	return schema
}
