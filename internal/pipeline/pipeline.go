// Package pipeline turns raw input lines into parsed records: it normalizes
// bare hosts, fans parsing out over a worker pool while preserving input
// order, and applies filtering, sorting and deduplication to the results.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/livp123/urlp/internal/format"
	"github.com/livp123/urlp/internal/metrics"
	"github.com/livp123/urlp/internal/urlview"
	"github.com/livp123/urlp/internal/utils/logger"
)

// Options configures a Pipeline.
type Options struct {
	// Workers is the number of parallel parse workers. 0 means one per CPU.
	Workers int
	// DefaultScheme is prepended to inputs without "://". Empty disables it.
	DefaultScheme string
	// Strict aborts on the first malformed URL instead of skipping it.
	Strict bool
	// Sort orders the output lexicographically by URL.
	Sort bool
	// Unique removes adjacent duplicate URLs after sorting.
	Unique bool
	// Filter, when set, keeps only records the expression matches.
	Filter *Filter
	// Metrics enables the prometheus counters.
	Metrics bool
}

// Pipeline applies the configured processing steps to batches of input.
type Pipeline struct {
	opts Options
}

func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

func (p *Pipeline) workers() int {
	if p.opts.Workers > 0 {
		return p.opts.Workers
	}
	return runtime.NumCPU()
}

// ParseError carries the offending input line alongside the parser error.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Normalize prepends the default scheme to inputs that lack one, so bare
// hosts like "example.com" parse without the caller spelling out a scheme.
func Normalize(line, defaultScheme string) string {
	if defaultScheme == "" || strings.Contains(line, "://") {
		return line
	}
	return defaultScheme + "://" + line
}

// Process parses all inputs and returns the surviving records in input
// order (or sorted, when requested). In strict mode the first malformed
// input aborts the batch; otherwise malformed inputs are logged and skipped.
func (p *Pipeline) Process(ctx context.Context, inputs []string) ([]format.Record, error) {
	if p.opts.Metrics {
		start := time.Now()
		defer func() {
			metrics.BatchesTotal.Inc()
			metrics.ParseDuration.Observe(time.Since(start).Seconds())
		}()
	}

	records := make([]*format.Record, len(inputs))
	parseErrs := make([]error, len(inputs))

	workers := p.workers()
	if workers > len(inputs) {
		workers = len(inputs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Drain instead of returning so the send loop never blocks
				// on a worker that already observed cancellation.
				if ctx.Err() != nil {
					continue
				}
				line := Normalize(inputs[i], p.opts.DefaultScheme)
				u, err := urlview.Parse(line)
				if err != nil {
					parseErrs[i] = err
					continue
				}
				rec := format.FromURL(line, u)
				records[i] = &rec
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := logger.Get(ctx)
	out := make([]format.Record, 0, len(inputs))
	for i := range inputs {
		if err := parseErrs[i]; err != nil {
			if p.opts.Metrics {
				metrics.ParseErrorsTotal.WithLabelValues(errorReason(err)).Inc()
			}
			if p.opts.Strict {
				return nil, &ParseError{Input: inputs[i], Err: err}
			}
			log.Warnf("[WARN]  Skipping malformed URL %q: %v", inputs[i], err)
			continue
		}
		if records[i] == nil {
			continue
		}
		if p.opts.Metrics {
			metrics.ParsedTotal.Inc()
		}
		if p.opts.Filter != nil {
			ok, err := p.opts.Filter.Match(records[i])
			if err != nil {
				return nil, err
			}
			if !ok {
				if p.opts.Metrics {
					metrics.FilteredTotal.Inc()
				}
				continue
			}
		}
		out = append(out, *records[i])
	}

	if p.opts.Sort {
		sort.Slice(out, func(a, b int) bool { return out[a].URL < out[b].URL })
	}
	if p.opts.Unique {
		out = dedupAdjacent(out)
	}
	return out, nil
}

// ProcessOne parses a single input through the same normalize/filter path.
// The boolean is false when the filter rejected the record.
func (p *Pipeline) ProcessOne(ctx context.Context, input string) (format.Record, bool, error) {
	line := Normalize(input, p.opts.DefaultScheme)
	u, err := urlview.Parse(line)
	if err != nil {
		if p.opts.Metrics {
			metrics.ParseErrorsTotal.WithLabelValues(errorReason(err)).Inc()
		}
		return format.Record{}, false, &ParseError{Input: input, Err: err}
	}
	rec := format.FromURL(line, u)
	if p.opts.Metrics {
		metrics.ParsedTotal.Inc()
	}
	if p.opts.Filter != nil {
		ok, err := p.opts.Filter.Match(&rec)
		if err != nil {
			return format.Record{}, false, err
		}
		if !ok {
			if p.opts.Metrics {
				metrics.FilteredTotal.Inc()
			}
			return format.Record{}, false, nil
		}
	}
	return rec, true, nil
}

// dedupAdjacent removes runs of equal URLs, keeping the first of each run.
func dedupAdjacent(records []format.Record) []format.Record {
	if len(records) < 2 {
		return records
	}
	out := records[:1]
	for _, rec := range records[1:] {
		if rec.URL != out[len(out)-1].URL {
			out = append(out, rec)
		}
	}
	return out
}

func errorReason(err error) string {
	var charErr *urlview.InvalidCharacterError
	switch {
	case errors.Is(err, urlview.ErrEmptyURL):
		return "empty"
	case errors.Is(err, urlview.ErrTooLong):
		return "too_long"
	case errors.Is(err, urlview.ErrInvalidScheme):
		return "scheme"
	case errors.Is(err, urlview.ErrMalformedURL):
		return "malformed"
	case errors.Is(err, urlview.ErrInvalidHost):
		return "host"
	case errors.Is(err, urlview.ErrInvalidPort):
		return "port"
	case errors.As(err, &charErr):
		return "character"
	default:
		return "other"
	}
}
