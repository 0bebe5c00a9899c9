package configure

import (
	"github.com/synclinehq/syncline/types"
)

// CompatibilityTable is the fixed priority list of candidate sync mode pairs
// considered when picking a default. Order encodes preference: incremental
// with dedup wins over plain full refresh whenever both qualify. The table
// need not contain every theoretically valid pair.
var CompatibilityTable = []types.SyncModePair{
	{Source: types.INCREMENTAL, Destination: types.APPENDDEDUP},
	{Source: types.FULLREFRESH, Destination: types.OVERWRITE},
	{Source: types.INCREMENTAL, Destination: types.APPEND},
	{Source: types.FULLREFRESH, Destination: types.APPEND},
}

// ResolveDefaultPair walks the CompatibilityTable in priority order and
// returns the first pair both sides support. The second return is false when
// no pair qualifies; the caller must then drop the stream.
func ResolveDefaultPair(stream *types.Stream, destination types.DestinationCapabilities) (types.SyncModePair, bool) {
	for _, pair := range CompatibilityTable {
		if stream.SupportsSyncMode(pair.Source) && destination.SupportsPair(pair) {
			return pair, true
		}
	}

	return types.SyncModePair{}, false
}

// VerifySupportedSyncModes keeps the configured pair when source and
// destination actually support it, otherwise replaces it with the resolved
// default. Returns false when the stream is unresolvable; the stream itself
// is left untouched in that case.
func VerifySupportedSyncModes(configured *types.ConfiguredStream, destination types.DestinationCapabilities) bool {
	pair := configured.Pair()
	if configured.Stream.SupportsSyncMode(pair.Source) && destination.SupportsPair(pair) {
		return true
	}

	resolved, ok := ResolveDefaultPair(configured.Stream, destination)
	if !ok {
		return false
	}

	configured.Config.SyncMode = resolved.Source
	configured.Config.DestinationSyncMode = resolved.Destination

	return true
}

// RepairCursorField substitutes the source declared default cursor path on an
// incremental stream that has none set and no source defined cursor. When no
// default exists the cursor stays empty for validation to catch; a cursor is
// never invented.
func RepairCursorField(configured *types.ConfiguredStream) {
	if configured.Config.SyncMode != types.INCREMENTAL {
		return
	}
	if configured.Stream.SourceDefinedCursor || len(configured.Config.CursorField) > 0 {
		return
	}
	if len(configured.Stream.DefaultCursorField) == 0 {
		return
	}

	cursor := make([]string, len(configured.Stream.DefaultCursorField))
	copy(cursor, configured.Stream.DefaultCursorField)
	configured.Config.CursorField = cursor
}
