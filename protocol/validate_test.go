package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synclinehq/syncline/configure"
	"github.com/synclinehq/syncline/types"
)

func TestConnectionStatus(t *testing.T) {
	t.Run("no violations succeed", func(t *testing.T) {
		message := connectionStatus(nil)

		assert.Equal(t, types.ConnectionStatusMessage, message.Type)
		require.NotNil(t, message.ConnectionStatus)
		assert.Equal(t, types.ConnectionSucceed, message.ConnectionStatus.Status)
		assert.Empty(t, message.ConnectionStatus.Message)
	})

	t.Run("violations fail with a count", func(t *testing.T) {
		message := connectionStatus([]configure.Violation{
			{FieldPath: "schedule", MessageKey: configure.MessageKeyMissingSchedule},
			{FieldPath: "namespaceFormat", MessageKey: configure.MessageKeyMissingNamespace},
		})

		require.NotNil(t, message.ConnectionStatus)
		assert.Equal(t, types.ConnectionFailed, message.ConnectionStatus.Status)
		assert.Contains(t, message.ConnectionStatus.Message, "2 violation(s)")
	})
}
