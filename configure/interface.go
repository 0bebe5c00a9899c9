package configure

import (
	"context"

	"github.com/synclinehq/syncline/types"
)

// Persister is the external collaborator an accepted configuration is handed
// to. The engine never talks to a backend itself; callers submit only after
// ValidateConnection returns zero violations.
type Persister interface {
	SaveConnection(ctx context.Context, conn *types.ConnectionConfiguration, operations []types.Operation) error
}
