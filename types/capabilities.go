package types

// DestinationCapabilities is what a destination connector declares it can do.
// Borrowed from the destination definition lookup; read only for the duration
// of one resolution pass.
type DestinationCapabilities struct {
	SupportedPairs        *Set[SyncModePair] `json:"supported_pairs,omitempty"`
	SupportsNormalization bool               `json:"supports_normalization,omitempty"`
	SupportsDbt           bool               `json:"supports_dbt,omitempty"`
}

// SupportsPair answers the capability membership query; absent support is a
// normal false.
func (d DestinationCapabilities) SupportsPair(pair SyncModePair) bool {
	return d.SupportedPairs.Exists(pair)
}

// CapabilitiesFromDestinationSyncModes builds the pair set a destination
// implies when it only declares its write strategies: every source sync mode
// crossed with each declared destination sync mode.
func CapabilitiesFromDestinationSyncModes(modes ...DestinationSyncMode) DestinationCapabilities {
	pairs := NewSet[SyncModePair]()
	for _, destination := range modes {
		for _, source := range []SyncMode{FULLREFRESH, INCREMENTAL} {
			pairs.Insert(SyncModePair{Source: source, Destination: destination})
		}
	}

	return DestinationCapabilities{SupportedPairs: pairs}
}
