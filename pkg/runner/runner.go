// Package runner executes external scanning tools as subprocesses.
package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"blitzscan/pkg/errors"
	"blitzscan/pkg/logger"
)

// CommandRunner runs one external command and returns its combined
// stdout/stderr. Implementations must honor context cancellation.
type CommandRunner interface {
	Run(ctx context.Context, command string, args []string) ([]byte, error)
}

// ExecRunner is the production CommandRunner backed by os/exec.
type ExecRunner struct {
	logger *logger.Logger
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{logger: logger.NewLogger(logrus.InfoLevel)}
}

// Run executes the command, capturing stdout and stderr together. Failures
// are classified into the taxonomy the handlers translate for the caller:
// ErrToolUnavailable (binary missing), ErrToolTimeout (context deadline) and
// ErrToolExecutionFailed (non-zero exit, output attached). Nothing is retried.
func (r *ExecRunner) Run(ctx context.Context, command string, args []string) ([]byte, error) {
	for i, arg := range args {
		if err := validateArgument(arg); err != nil {
			return nil, fmt.Errorf("invalid argument at index %d: %w", i, err)
		}
	}

	r.logger.WithFields(logger.Fields{
		"command": command,
		"args":    strings.Join(args, " "),
	}).Info("Executing command")

	cmd := exec.CommandContext(ctx, command, args...)
	output, err := cmd.CombinedOutput()
	if err == nil {
		return output, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return output, fmt.Errorf("%w: %s", errors.ErrToolTimeout, command)
	}
	if stderrors.Is(err, exec.ErrNotFound) {
		return output, fmt.Errorf("%w: %s", errors.ErrToolUnavailable, command)
	}

	r.logger.WithError(err).WithFields(logrus.Fields{
		"command": command,
		"output":  string(output),
	}).Error("Command execution failed")

	return output, fmt.Errorf("%w: %v", errors.ErrToolExecutionFailed, err)
}

// validateArgument rejects shell metacharacters that could enable command
// injection if an argument were ever passed through a shell downstream.
func validateArgument(arg string) error {
	dangerous := []string{";", "&", "|", "`", "$", "\n", "\r", "<", ">"}
	for _, char := range dangerous {
		if strings.Contains(arg, char) {
			return fmt.Errorf("argument contains dangerous character %q", char)
		}
	}
	return nil
}
