package types

// StreamConfig is the user editable half of a configured stream. Every field
// value is expected to come from the paired descriptor's schema; the engine
// assumes that and does not enforce it.
type StreamConfig struct {
	Selected            bool                `json:"selected"`
	SyncMode            SyncMode            `json:"sync_mode,omitempty"`
	DestinationSyncMode DestinationSyncMode `json:"destination_sync_mode,omitempty"`
	CursorField         []string            `json:"cursor_field,omitempty"`
	PrimaryKey          [][]string          `json:"primary_key,omitempty"`
}

// ConfiguredStream pairs one immutable Stream with one StreamConfig.
//
// ID is the stream's zero based position in the discovery snapshot it came
// from. It is a session-local correlation key for validation errors, NOT a
// durable identity: re-running discovery reassigns it. Use Stream.ID() when a
// durable key is needed.
type ConfiguredStream struct {
	ID     string       `json:"id"`
	Stream *Stream      `json:"stream"`
	Config StreamConfig `json:"config"`
}

func (c *ConfiguredStream) Name() string {
	return c.Stream.Name
}

func (c *ConfiguredStream) Namespace() string {
	return c.Stream.Namespace
}

// Pair returns the currently configured sync mode pair.
func (c *ConfiguredStream) Pair() SyncModePair {
	return SyncModePair{
		Source:      c.Config.SyncMode,
		Destination: c.Config.DestinationSyncMode,
	}
}

// SyncSchema is the ordered catalog of configured streams; order is the
// discovery order and is preserved throughout the editing session.
type SyncSchema struct {
	Streams []*ConfiguredStream `json:"streams"`
}
