package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesFromDestinationSyncModes(t *testing.T) {
	tests := []struct {
		name          string
		declared      []DestinationSyncMode
		supported     []SyncModePair
		notSupported  []SyncModePair
		expectedPairs int
	}{
		{
			name:     "overwrite only",
			declared: []DestinationSyncMode{OVERWRITE},
			supported: []SyncModePair{
				{Source: FULLREFRESH, Destination: OVERWRITE},
				{Source: INCREMENTAL, Destination: OVERWRITE},
			},
			notSupported: []SyncModePair{
				{Source: INCREMENTAL, Destination: APPENDDEDUP},
			},
			expectedPairs: 2,
		},
		{
			name:     "all write strategies",
			declared: []DestinationSyncMode{OVERWRITE, APPEND, APPENDDEDUP},
			supported: []SyncModePair{
				{Source: INCREMENTAL, Destination: APPENDDEDUP},
				{Source: FULLREFRESH, Destination: APPEND},
			},
			notSupported:  []SyncModePair{},
			expectedPairs: 6,
		},
		{
			name:     "no write strategies",
			declared: []DestinationSyncMode{},
			notSupported: []SyncModePair{
				{Source: FULLREFRESH, Destination: OVERWRITE},
			},
			expectedPairs: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := CapabilitiesFromDestinationSyncModes(tt.declared...)

			assert.Equal(t, tt.expectedPairs, caps.SupportedPairs.Len())
			for _, pair := range tt.supported {
				assert.True(t, caps.SupportsPair(pair), "Should support %+v", pair)
			}
			for _, pair := range tt.notSupported {
				assert.False(t, caps.SupportsPair(pair), "Should not support %+v", pair)
			}
		})
	}
}

func TestDestinationCapabilities_SupportsPairNilSet(t *testing.T) {
	caps := DestinationCapabilities{}

	assert.False(t, caps.SupportsPair(SyncModePair{Source: FULLREFRESH, Destination: OVERWRITE}),
		"An empty descriptor supports nothing and must not panic")
}
