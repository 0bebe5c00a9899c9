package types

// Catalog is the raw discovery output: the full ordered set of streams a
// source exposes, before any sync mode resolution.
type Catalog struct {
	Streams []*Stream `json:"streams"`
}

// Message is a dto for connector output row representation
type Message struct {
	Type             MessageType `json:"type"`
	Log              *Log        `json:"log,omitempty"`
	ConnectionStatus *StatusRow  `json:"connectionStatus,omitempty"`
	Catalog          *Catalog    `json:"catalog,omitempty"`
}

// Log is a dto for connector log serialization
type Log struct {
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

// StatusRow is a dto for connection check result serialization
type StatusRow struct {
	Status  ConnectionStatus `json:"status,omitempty"`
	Message string           `json:"message,omitempty"`
}
