package pipeline

import (
	"errors"
	"log/slog"

	"github.com/couchcryptid/geoloc-model-export/internal/domain"
	"github.com/couchcryptid/geoloc-model-export/internal/observability"
	"github.com/couchcryptid/geoloc-model-export/internal/parser"
)

// progressInterval controls how often word progress is logged.
const progressInterval = 10000

// ErrNoGranularity is returned when a matrix section appears before the
// granularity header. The dense buffer cannot be sized without it and there
// is no safe way to resume, so the run terminates.
var ErrNoGranularity = errors.New("matrix section before granularity header")

// ArtifactWriter persists completed word records and the final model
// document. Implemented by artifact.Writer.
type ArtifactWriter interface {
	WriteWord(rec *domain.WordRecord) error
	WriteModel(doc *domain.ModelDocument) error
}

// Options selects which optional fields are attached to word artifacts.
type Options struct {
	IncludeCoords bool
	IncludeWeight bool
	IncludeWordID bool
}

// Assembler owns all accumulation buffers: the model document under
// construction and the single in-flight word record. It applies classifier
// events in input order and flushes words to the writer as they terminate.
// Buffers are exclusively owned; the assembler is not safe for concurrent
// use and does not need to be, the conversion is a single pass.
type Assembler struct {
	writer  ArtifactWriter
	opts    Options
	logger  *slog.Logger
	metrics *observability.Metrics

	doc         domain.ModelDocument
	word        *domain.WordRecord
	granularity int
	finalized   bool
}

// NewAssembler creates an Assembler flushing artifacts through w.
func NewAssembler(w ArtifactWriter, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Assembler {
	return &Assembler{
		writer:  w,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}
}

// WordTypes returns the number of word headers processed so far.
func (a *Assembler) WordTypes() int {
	return a.doc.WordTypes
}

// Apply mutates the assembler's buffers according to one classifier event.
// Errors are fatal: a broken precondition or a failed artifact write.
func (a *Assembler) Apply(ev parser.Event) error {
	switch ev.Kind {
	case parser.EventGranularity:
		g := ev.Granularity
		a.granularity = g
		a.doc.Granularity = &g

	case parser.EventTweetMatrixStart:
		if a.granularity == 0 {
			return ErrNoGranularity
		}
		buf := make([]*float64, a.granularity*a.granularity/2)
		a.doc.TweetMatrix = &buf

	case parser.EventTweetCell:
		a.setTweetCell(ev)

	case parser.EventCentroidsStart:
		centroids := []domain.Coordinate{}
		a.doc.Centroids = &centroids

	case parser.EventCentroid:
		*a.doc.Centroids = append(*a.doc.Centroids, domain.Coordinate{ev.Lat, ev.Lon})

	case parser.EventWordStart:
		a.beginWord(ev)

	case parser.EventWordCoord:
		if a.opts.IncludeCoords {
			a.word.Coords = append(a.word.Coords, domain.Coordinate{ev.Lat, ev.Lon})
		}

	case parser.EventMatrixStart:
		if a.word.Matrix == nil {
			cells := []domain.MatrixCell{}
			a.word.Matrix = &cells
		}

	case parser.EventMatrixCell:
		*a.word.Matrix = append(*a.word.Matrix, domain.MatrixCell{X: ev.X, Y: ev.Y, Value: ev.Value})

	case parser.EventWordFlush:
		return a.flushWord()

	case parser.EventWordMatrixStart:
		cells := []domain.MatrixCell{}
		a.doc.WordMatrix = &cells

	case parser.EventWordMatrixCell:
		*a.doc.WordMatrix = append(*a.doc.WordMatrix, domain.MatrixCell{X: ev.X, Y: ev.Y, Value: ev.Value})
	}
	return nil
}

// setTweetCell populates one dense matrix entry. Out-of-bounds coordinates
// are malformed input: reported and skipped, like any other bad line.
func (a *Assembler) setTweetCell(ev parser.Event) {
	idx := ev.X + ev.Y*a.granularity
	buf := *a.doc.TweetMatrix
	if idx < 0 || idx >= len(buf) {
		a.logger.Warn("tweet matrix cell out of bounds",
			"x", ev.X, "y", ev.Y, "granularity", a.granularity)
		a.metrics.MalformedLines.Inc()
		return
	}
	v := ev.Value
	buf[idx] = &v
}

func (a *Assembler) beginWord(ev parser.Event) {
	a.doc.WordTypes++
	if a.doc.WordTypes%progressInterval == 0 {
		a.logger.Info("processing word", "word", ev.Word, "wordtypes", a.doc.WordTypes)
	}
	a.logger.Debug("word header", "word", ev.Word, "id", ev.WordID)

	rec := &domain.WordRecord{Word: ev.Word}
	if a.opts.IncludeWeight {
		w := ev.Weight
		rec.Weight = &w
	}
	if a.opts.IncludeWordID {
		id := ev.WordID
		rec.WordID = &id
	}
	a.word = rec
}

// flushWord persists the in-flight word record. The record is kept until the
// next word header so that a trailing end-of-model marker can re-flush it
// idempotently. Unsaveable words are silently dropped.
func (a *Assembler) flushWord() error {
	if a.word == nil {
		return nil
	}
	if !domain.WordIsSaveable(a.word.Word) {
		a.metrics.WordsDropped.Inc()
		return nil
	}
	if err := a.writer.WriteWord(a.word); err != nil {
		return err
	}
	a.metrics.WordsFlushed.Inc()
	return nil
}

// Finalize writes the model document. It runs exactly once per stream;
// repeated calls are no-ops.
func (a *Assembler) Finalize() error {
	if a.finalized {
		return nil
	}
	if err := a.writer.WriteModel(&a.doc); err != nil {
		return err
	}
	a.finalized = true
	return nil
}
