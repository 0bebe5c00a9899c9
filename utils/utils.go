package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func Ternary(cond bool, a, b any) any {
	if cond {
		return a
	}
	return b
}

// ArrayContains returns the index of the first element matching the
// predicate.
func ArrayContains[T any](array []T, match func(elem T) bool) (int, bool) {
	for idx, elem := range array {
		if match(elem) {
			return idx, true
		}
	}

	return -1, false
}

// UnmarshalFile reads a JSON or YAML document into dest based on the file
// extension.
func UnmarshalFile(filePath string, dest any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %s", filePath, err)
	}

	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, dest)
	default:
		err = json.Unmarshal(data, dest)
	}
	if err != nil {
		return fmt.Errorf("failed to unmarshal file %s: %s", filePath, err)
	}

	return nil
}

func IsValidSubcommand(commands []*cobra.Command, subcommand string) bool {
	_, found := ArrayContains(commands, func(cmd *cobra.Command) bool {
		return cmd.Use == subcommand
	})

	return found
}
