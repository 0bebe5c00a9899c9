package configure

import (
	"github.com/synclinehq/syncline/types"
	"github.com/synclinehq/syncline/utils"
)

// MergeOperations combines the user's normalization choice and transformation
// list with previously persisted operations into the single ordered list the
// persistence collaborator receives.
//
// The normalization operation, when emitted, is always index 0 and reuses the
// identity of an already persisted normalization operation so the backend
// updates instead of duplicating. A nil or raw choice emits no normalization
// operation at all. Transformations follow verbatim, keeping their order and
// their ids. Inputs are never mutated.
func MergeOperations(transformations []types.Operation, normalization *types.NormalizationOption, persisted []types.Operation, workspaceID string) []types.Operation {
	operations := make([]types.Operation, 0, len(transformations)+1)

	if normalization != nil && *normalization != types.NormalizationRaw {
		idx, found := utils.ArrayContains(persisted, func(op types.Operation) bool {
			return op.IsNormalization() && op.Persisted()
		})
		if found {
			op := persisted[idx]
			op.Normalization = &types.NormalizationConfig{Option: *normalization}
			operations = append(operations, op)
		} else {
			operations = append(operations, types.NewNormalizationOperation(workspaceID, *normalization))
		}
	}

	return append(operations, transformations...)
}

// Transformations filters the dbt kind operations out of a persisted list,
// preserving order.
func Transformations(operations []types.Operation) []types.Operation {
	out := []types.Operation{}
	for _, op := range operations {
		if op.Operator == types.OperatorDbt {
			out = append(out, op)
		}
	}

	return out
}

// PersistedNormalization returns the normalization option of the first
// persisted normalization operation, or nil when none exists.
func PersistedNormalization(operations []types.Operation) *types.NormalizationOption {
	idx, found := utils.ArrayContains(operations, func(op types.Operation) bool {
		return op.IsNormalization() && op.Normalization != nil
	})
	if !found {
		return nil
	}

	option := operations[idx].Normalization.Option
	return &option
}
