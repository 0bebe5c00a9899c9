package discover

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/synclinehq/syncline/types"
	"github.com/synclinehq/syncline/utils"
)

const (
	configFileName  = "config.json"
	catalogFileName = "catalog.json"
	errorLogName    = "err.log"

	errorTailBytes = 2048
)

// Worker runs one catalog discovery against a source connector binary. Each
// worker owns a workspace directory named after its id where the config,
// captured catalog and error log land as artifacts.
//
// The engine itself never sees any of this; it consumes only the parsed
// catalog a successful run returns.
type Worker struct {
	id            string
	binPath       string
	workspaceRoot string
}

func NewWorker(binPath, workspaceRoot string) *Worker {
	return &Worker{
		id:            uuid.NewString(),
		binPath:       binPath,
		workspaceRoot: workspaceRoot,
	}
}

func (w *Worker) ID() string {
	return w.id
}

func (w *Worker) WorkspacePath() string {
	return filepath.Join(w.workspaceRoot, w.id)
}

// Discover writes the connector config into the workspace, execs the binary
// with --config and --discover, captures stdout into catalog.json and stderr
// into err.log, and parses the captured catalog on a zero exit.
func (w *Worker) Discover(ctx context.Context, configJSON []byte) (*types.Catalog, error) {
	workspace := w.WorkspacePath()
	if err := os.MkdirAll(workspace, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create workspace %s: %s", workspace, err)
	}

	configPath := filepath.Join(workspace, configFileName)
	if err := os.WriteFile(configPath, configJSON, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write connector config: %s", err)
	}

	catalogPath := filepath.Join(workspace, catalogFileName)
	errorLogPath := filepath.Join(workspace, errorLogName)

	if err := w.run(ctx, configPath, catalogPath, errorLogPath); err != nil {
		return nil, fmt.Errorf("discovery failed: %s%s", err, w.errorTail(errorLogPath))
	}

	catalog := &types.Catalog{}
	if err := utils.UnmarshalFile(catalogPath, catalog); err != nil {
		return nil, fmt.Errorf("connector produced an unreadable catalog: %s", err)
	}

	return catalog, nil
}

func (w *Worker) run(ctx context.Context, configPath, catalogPath, errorLogPath string) error {
	catalogFile, err := os.Create(catalogPath)
	if err != nil {
		return err
	}
	errorLog, err := os.Create(errorLogPath)
	if err != nil {
		catalogFile.Close()
		return err
	}
	defer func() {
		_ = utils.ErrExecSequential(catalogFile.Close, errorLog.Close)
	}()

	cmd := exec.CommandContext(ctx, w.binPath, "--config", configPath, "--discover")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start connector %s: %s", w.binPath, err)
	}

	// both pipes must be drained before Wait
	copyErr := utils.ErrExec(ctx,
		utils.ErrExecFormat("failed to capture catalog: %s", func() error {
			_, err := io.Copy(catalogFile, stdout)
			return err
		}),
		utils.ErrExecFormat("failed to capture error log: %s", func() error {
			_, err := io.Copy(errorLog, stderr)
			return err
		}),
	)

	if err := cmd.Wait(); err != nil {
		return err
	}

	return copyErr
}

// errorTail returns the last chunk of the connector's error log, formatted
// for inclusion in an error message.
func (w *Worker) errorTail(errorLogPath string) string {
	data, err := os.ReadFile(errorLogPath)
	if err != nil || len(data) == 0 {
		return ""
	}

	if len(data) > errorTailBytes {
		data = data[len(data)-errorTailBytes:]
	}

	return fmt.Sprintf("; connector error log: %s", strings.TrimSpace(string(data)))
}

// LogCatalog writes the discovered catalog artifact beside the worker's other
// files and returns its path.
func (w *Worker) LogCatalog(catalog *types.Catalog) (string, error) {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal catalog: %s", err)
	}

	path := filepath.Join(w.WorkspacePath(), catalogFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write catalog artifact: %s", err)
	}

	return path, nil
}
