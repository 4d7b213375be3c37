package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"blitzscan/internal/notification"
	"blitzscan/pkg/errors"
	"blitzscan/pkg/logger"
	"blitzscan/pkg/parsers"
	"blitzscan/pkg/runner"
	"blitzscan/pkg/target"
	"blitzscan/pkg/tools"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

type ToolServiceMethods interface {
	// RunTool normalizes the raw target, runs the tool and parses its
	// output. The normalized target is returned even on failure so
	// callers can report what was actually scanned.
	RunTool(ctx context.Context, kind tools.Kind, rawTarget string) (parsers.Detail, string, error)
}

type toolService struct {
	catalog  tools.Catalog
	runner   runner.CommandRunner
	notifier *notification.Client
	logger   *logger.Logger
}

func NewToolService(catalog tools.Catalog, cmdRunner runner.CommandRunner, notifier *notification.Client) ToolServiceMethods {
	return &toolService{
		catalog:  catalog,
		runner:   cmdRunner,
		notifier: notifier,
		logger:   logger.NewLogger(logrus.InfoLevel),
	}
}

func (s *toolService) RunTool(ctx context.Context, kind tools.Kind, rawTarget string) (parsers.Detail, string, error) {
	normalized, err := target.Normalize(rawTarget)
	if err != nil {
		return nil, "", err
	}

	spec, err := s.catalog.Get(kind)
	if err != nil {
		return nil, normalized, err
	}

	runCtx, cancel := context.WithTimeout(ctx, spec.Timeout)
	defer cancel()

	var output []byte
	err = s.logger.LogToolRun(spec.Name, func() error {
		var runErr error
		output, runErr = s.runner.Run(runCtx, spec.Command, spec.BuildArgs(normalized))
		return runErr
	})
	if err != nil {
		if sendErr := s.notifier.ToolFailed(spec.Name, normalized, err); sendErr != nil {
			s.logger.Error("Failed to send notification", logger.Fields{"error": sendErr})
		}
		return nil, normalized, errors.NewToolError(spec.Name, string(output), err)
	}

	raw := string(output)
	if outputFile := spec.BuildOutputFile(normalized); outputFile != "" {
		raw, err = s.readResultFile(runCtx, outputFile)
		if err != nil {
			return nil, normalized, err
		}
	}

	detail, err := parsers.Parse(kind, normalized, raw)
	if err != nil {
		return nil, normalized, err
	}
	return detail, normalized, nil
}

// readResultFile handles tools that write to disk instead of stdout:
// wait for the file to appear, bounded by the remaining tool timeout,
// then read it.
func (s *toolService) readResultFile(ctx context.Context, path string) (string, error) {
	if err := s.waitForFile(ctx, path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read tool output %s: %w", path, err)
	}
	return string(data), nil
}

func (s *toolService) waitForFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	s.logger.Info("Waiting for result file", logger.Fields{"file": path})

	// Ticker covers the window between the initial stat and the watch,
	// and editors that replace instead of write.
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed while waiting for %s", path)
			}
			if event.Name == path && event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				return nil
			}

		case <-ticker.C:
			if _, err := os.Stat(path); err == nil {
				return nil
			}

		case watchErr, ok := <-watcher.Errors:
			if ok {
				s.logger.Error("File watcher error", logger.Fields{"error": watchErr, "file": path})
			}

		case <-ctx.Done():
			if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: waiting for %s", errors.ErrToolTimeout, path)
			}
			return ctx.Err()
		}
	}
}
