package exporters

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

var ErrNoClipboard = errors.New("no clipboard utility available")

type ClipboardExporter struct {
	logger      *slog.Logger
	unsupported func() bool
	write       func(text string) error
}

func NewClipboardExporter(logger *slog.Logger) *ClipboardExporter {
	return &ClipboardExporter{
		logger:      logger,
		unsupported: func() bool { return clipboard.Unsupported },
		write:       clipboard.WriteAll,
	}
}

func (e *ClipboardExporter) Export(ctx context.Context, words []string) error {
	if e.unsupported() {
		return ErrNoClipboard
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "write clipboard")
	}

	content, err := Render(words)
	if err != nil {
		return err
	}

	if err := e.write(content); err != nil {
		return errors.Wrap(err, "write clipboard")
	}

	e.logger.Info("words copied to clipboard", "count", len(words))
	return nil
}
