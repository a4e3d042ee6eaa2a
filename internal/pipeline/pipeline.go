// Package pipeline drives the conversion: it streams model file lines
// through the classifier and applies the resulting events to the assembler's
// buffers. One pass, one goroutine; backpressure is the synchronous
// line-at-a-time read.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/couchcryptid/geoloc-model-export/internal/observability"
	"github.com/couchcryptid/geoloc-model-export/internal/parser"
)

// maxLineBytes bounds a single input line. Model lines are short triples and
// headers; this is headroom, not an expected size.
const maxLineBytes = 1024 * 1024

// Pipeline orchestrates the read-classify-apply loop.
type Pipeline struct {
	assembler *Assembler
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline around the given assembler.
func New(a *Assembler, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		assembler: a,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run consumes the model stream to exhaustion and finalizes the model
// document. Malformed lines are reported and skipped; a missing granularity
// precondition or an I/O failure terminates the run with an error. Artifacts
// written before a failure are left in place.
func (p *Pipeline) Run(r io.Reader) error {
	start := clock.Now()
	p.logger.Info("starting conversion")

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	state := parser.StateNone
	lineNum := 0
	for sc.Scan() {
		lineNum++
		p.metrics.LinesRead.Inc()

		next, ev := parser.Classify(state, sc.Text())
		if ev.Kind == parser.EventSkip {
			p.logger.Warn("unknown line",
				"line", lineNum, "state", state.String(), "text", ev.Line)
			p.metrics.MalformedLines.Inc()
			state = next
			continue
		}

		if err := p.assembler.Apply(ev); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		state = next
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read model stream: %w", err)
	}

	if err := p.assembler.Finalize(); err != nil {
		return err
	}

	elapsed := clock.Since(start)
	p.metrics.ConversionDuration.Observe(elapsed.Seconds())
	p.logger.Info("finished conversion",
		"lines", lineNum,
		"wordtypes", p.assembler.WordTypes(),
		"duration", elapsed)
	return nil
}
