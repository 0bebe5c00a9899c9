package types

// SyncMode is the source side extraction strategy of a stream
type SyncMode string

const (
	FULLREFRESH SyncMode = "full_refresh"
	INCREMENTAL SyncMode = "incremental"
)

// DestinationSyncMode is the destination side write strategy
type DestinationSyncMode string

const (
	OVERWRITE   DestinationSyncMode = "overwrite"
	APPEND      DestinationSyncMode = "append"
	APPENDDEDUP DestinationSyncMode = "append_dedup"
)

// SyncModePair couples a source extraction strategy with a destination write
// strategy; a sync runs with exactly one pair per stream.
type SyncModePair struct {
	Source      SyncMode            `json:"sync_mode"`
	Destination DestinationSyncMode `json:"destination_sync_mode"`
}
