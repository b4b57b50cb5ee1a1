package pipeline

import (
	"context"
	"strings"

	"github.com/nxadm/tail"

	"github.com/livp123/urlp/internal/format"
	"github.com/livp123/urlp/internal/metrics"
	"github.com/livp123/urlp/internal/utils/logger"
)

// Follow tails a file and feeds every new URL line through the pipeline,
// invoking handler for each surviving record. It blocks until the context
// is canceled or the handler returns an error.
func (p *Pipeline) Follow(ctx context.Context, path string, handler func(format.Record) error) error {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true, // Handle log rotation
		MustExist: false,
		Poll:      true, // Fallback if inotify fails
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return err
	}
	defer func() {
		t.Stop()
		t.Cleanup()
	}()

	log := logger.Get(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				log.Warnf("[WARN]  Error reading %s: %v", path, line.Err)
				continue
			}
			if p.opts.Metrics {
				metrics.LinesReadTotal.Inc()
			}
			text := strings.TrimSpace(line.Text)
			if text == "" || strings.HasPrefix(text, "#") {
				if p.opts.Metrics {
					metrics.LinesSkippedTotal.Inc()
				}
				continue
			}

			rec, ok, err := p.ProcessOne(ctx, text)
			if err != nil {
				if p.opts.Strict {
					return err
				}
				log.Warnf("[WARN]  Skipping malformed URL %q: %v", text, err)
				continue
			}
			if !ok {
				continue
			}
			if err := handler(rec); err != nil {
				return err
			}
		}
	}
}
