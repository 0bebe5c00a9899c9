package configure

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/synclinehq/syncline/types"
	"github.com/synclinehq/syncline/utils"
)

// Violation is one field scoped validation failure. Message keys are i18n
// keys resolved by the rendering collaborator; the engine never carries
// display text.
type Violation struct {
	FieldPath  string `json:"fieldPath"`
	MessageKey string `json:"messageKey"`
}

const (
	MessageKeyMissingPrimaryKey  = "form.primaryKey.missing"
	MessageKeyMissingCursorField = "form.cursorField.missing"
	MessageKeyMissingSchedule    = "form.schedule.missing"
	MessageKeyMissingNamespace   = "form.namespaceFormat.missing"
	MessageKeyMalformed          = "form.failed.error"

	malformedFieldPath = "connectionConfiguration"
)

// streamRules apply per stream, only when the stream is selected; unselected
// streams are exempt from every rule.
var streamRules = []struct {
	field      string
	messageKey string
	violated   func(s *types.ConfiguredStream) bool
}{
	{
		field:      "primaryKey",
		messageKey: MessageKeyMissingPrimaryKey,
		violated: func(s *types.ConfiguredStream) bool {
			return s.Config.DestinationSyncMode == types.APPENDDEDUP && len(s.Config.PrimaryKey) == 0
		},
	},
	{
		field:      "cursorField",
		messageKey: MessageKeyMissingCursorField,
		violated: func(s *types.ConfiguredStream) bool {
			return s.Config.SyncMode == types.INCREMENTAL &&
				!s.Stream.SourceDefinedCursor &&
				len(s.Config.CursorField) == 0
		},
	},
}

// connectionRules apply once over the whole configuration.
var connectionRules = []struct {
	fieldPath  string
	messageKey string
	violated   func(c *types.ConnectionConfiguration) bool
}{
	{
		fieldPath:  "schedule",
		messageKey: MessageKeyMissingSchedule,
		violated: func(c *types.ConnectionConfiguration) bool {
			if c.Schedule == nil {
				return true
			}
			if c.Schedule.Manual {
				return false
			}

			return c.Schedule.Interval == nil ||
				c.Schedule.Interval.Units <= 0 ||
				c.Schedule.Interval.TimeUnit == ""
		},
	},
	{
		fieldPath:  "namespaceFormat",
		messageKey: MessageKeyMissingNamespace,
		violated: func(c *types.ConnectionConfiguration) bool {
			return c.NamespaceDefinition == types.NamespaceCustomFormat && c.NamespaceFormat == ""
		},
	},
}

// ValidateConnection runs the cross field ruleset over a fully edited
// configuration. Zero violations means accepted. Nothing here is fatal;
// every failure is recoverable by further editing.
func ValidateConnection(conn *types.ConnectionConfiguration) []Violation {
	violations := []Violation{}

	// contract level failures (wrong enum member, a stream entry with no
	// descriptor) reject the submission as a whole under a generic path
	malformed := len(utils.ValidateMessages(conn)) > 0
	for _, stream := range conn.Schema.Streams {
		if stream == nil || stream.Stream == nil {
			malformed = true
		}
	}
	if malformed {
		violations = append(violations, Violation{
			FieldPath:  malformedFieldPath,
			MessageKey: MessageKeyMalformed,
		})
	}

	for _, rule := range connectionRules {
		if rule.violated(conn) {
			violations = append(violations, Violation{
				FieldPath:  rule.fieldPath,
				MessageKey: rule.messageKey,
			})
		}
	}

	for _, stream := range conn.Schema.Streams {
		if stream == nil || stream.Stream == nil || !stream.Config.Selected {
			continue
		}

		for _, rule := range streamRules {
			if rule.violated(stream) {
				violations = append(violations, Violation{
					FieldPath:  fmt.Sprintf("schema.streams[%s].config.%s", stream.ID, rule.field),
					MessageKey: rule.messageKey,
				})
			}
		}
	}

	return violations
}

// ValidateConnectionDocument decodes a raw submission with a closed top-level
// schema and then applies ValidateConnection. Unknown fields or wrong
// primitive types reject the whole submission with a generic path, surfaced
// exactly like field violations.
func ValidateConnectionDocument(raw []byte) (*types.ConnectionConfiguration, []Violation) {
	conn := &types.ConnectionConfiguration{}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(conn); err != nil {
		return nil, []Violation{{
			FieldPath:  malformedFieldPath,
			MessageKey: MessageKeyMalformed,
		}}
	}

	return conn, ValidateConnection(conn)
}
