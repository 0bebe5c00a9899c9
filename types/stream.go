package types

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Stream is the source declared descriptor of one addressable dataset. It is
// created once by catalog discovery and MUST NOT be mutated by the engine.
type Stream struct {
	Name                    string         `json:"name"`
	Namespace               string         `json:"namespace,omitempty"`
	Schema                  *TypeSchema    `json:"json_schema,omitempty"`
	SupportedSyncModes      *Set[SyncMode] `json:"supported_sync_modes,omitempty"`
	SourceDefinedCursor     bool           `json:"source_defined_cursor,omitempty"`
	DefaultCursorField      []string       `json:"default_cursor_field,omitempty"`
	SourceDefinedPrimaryKey [][]string     `json:"source_defined_primary_key,omitempty"`
}

func NewStream(name, namespace string) *Stream {
	return &Stream{
		Name:               name,
		Namespace:          namespace,
		Schema:             NewTypeSchema(),
		SupportedSyncModes: NewSet[SyncMode](),
	}
}

// ID is the durable identity of a stream across discovery snapshots;
// position-based ids are session-local and never reused for this.
func (s *Stream) ID() string {
	return fmt.Sprintf("%s.%s", s.Namespace, s.Name)
}

func (s *Stream) WithSyncModes(modes ...SyncMode) *Stream {
	s.SupportedSyncModes.Insert(modes...)
	return s
}

func (s *Stream) WithSchema(schema *TypeSchema) *Stream {
	s.Schema = schema
	return s
}

func (s *Stream) WithSourceDefinedCursor() *Stream {
	s.SourceDefinedCursor = true
	return s
}

func (s *Stream) WithDefaultCursorField(path ...string) *Stream {
	s.DefaultCursorField = path
	return s
}

func (s *Stream) WithSourceDefinedPrimaryKey(paths ...[]string) *Stream {
	s.SourceDefinedPrimaryKey = append(s.SourceDefinedPrimaryKey, paths...)
	return s
}

// SupportsSyncMode answers the capability membership query; absent support is
// a normal false, never an error.
func (s *Stream) SupportsSyncMode(mode SyncMode) bool {
	return s.SupportedSyncModes.Exists(mode)
}

// Wrap pairs the descriptor with a fresh editable config at the given catalog
// position. Primary key and cursor default from what the source declared.
func (s *Stream) Wrap(position int) *ConfiguredStream {
	var primaryKey [][]string
	for _, path := range s.SourceDefinedPrimaryKey {
		primaryKey = append(primaryKey, append([]string{}, path...))
	}

	return &ConfiguredStream{
		ID:     strconv.Itoa(position),
		Stream: s,
		Config: StreamConfig{
			Selected:   true,
			PrimaryKey: primaryKey,
		},
	}
}

// UnmarshalJSON initializes nil collections so a sparse catalog document
// cannot produce nil pointer panics downstream.
func (s *Stream) UnmarshalJSON(data []byte) error {
	type Alias Stream
	aux := (*Alias)(s)
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if s.SupportedSyncModes == nil {
		s.SupportedSyncModes = NewSet[SyncMode]()
	}
	if s.Schema == nil {
		s.Schema = NewTypeSchema()
	}

	return nil
}

func StreamsToMap(streams ...*Stream) map[string]*Stream {
	output := make(map[string]*Stream)
	for _, stream := range streams {
		output[stream.ID()] = stream
	}

	return output
}
