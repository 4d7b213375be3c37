package runner

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blitzscan/pkg/errors"
)

func TestExecRunnerCapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires unix echo")
	}

	r := NewExecRunner()
	out, err := r.Run(context.Background(), "echo", []string{"hello"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "hello")
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := NewExecRunner()
	_, err := r.Run(context.Background(), "definitely-not-a-real-binary-xyz", nil)
	assert.ErrorIs(t, err, errors.ErrToolUnavailable)
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires unix false")
	}

	r := NewExecRunner()
	_, err := r.Run(context.Background(), "false", nil)
	assert.ErrorIs(t, err, errors.ErrToolExecutionFailed)
}

func TestExecRunnerTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires unix sleep")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := NewExecRunner()
	_, err := r.Run(ctx, "sleep", []string{"5"})
	assert.ErrorIs(t, err, errors.ErrToolTimeout)
}

func TestExecRunnerRejectsDangerousArguments(t *testing.T) {
	r := NewExecRunner()
	for _, arg := range []string{"a;b", "a|b", "`whoami`", "$HOME", "a\nb"} {
		_, err := r.Run(context.Background(), "echo", []string{arg})
		assert.Error(t, err, "arg %q", arg)
	}
}
