package parser

// EventKind discriminates the payload of an [Event].
type EventKind int

const (
	// EventSectionEnd closes a section with no side effect.
	EventSectionEnd EventKind = iota
	// EventGranularity records the grid side length. Carries Granularity.
	EventGranularity
	// EventTweetMatrixStart opens the dense tweet-density matrix.
	EventTweetMatrixStart
	// EventTweetCell sets one dense matrix entry. Carries X, Y, Value.
	EventTweetCell
	// EventCentroidsStart opens the centroid list.
	EventCentroidsStart
	// EventCentroid appends a centroid. Carries Lat, Lon.
	EventCentroid
	// EventWordStart begins a new word record. Carries Word, WordID,
	// Weight and HasWeight.
	EventWordStart
	// EventWordCoord appends a coordinate to the current word. Carries
	// Lat, Lon.
	EventWordCoord
	// EventMatrixStart opens the current word's sparse matrix.
	EventMatrixStart
	// EventMatrixCell appends a cell to the current word's matrix.
	// Carries X, Y, Value.
	EventMatrixCell
	// EventWordFlush terminates the current word, persisting its record.
	EventWordFlush
	// EventWordMatrixStart opens the aggregate word-pair matrix.
	EventWordMatrixStart
	// EventWordMatrixCell appends a cell to the aggregate matrix. Carries
	// X, Y, Value.
	EventWordMatrixCell
	// EventSkip marks a line that matched no pattern for the current
	// state. Carries Line. Non-fatal: the line is reported and dropped.
	EventSkip
)

// Event is the structured outcome of classifying one line. Kind selects
// which payload fields are meaningful.
type Event struct {
	Kind EventKind

	Granularity int

	Word      string
	WordID    int
	Weight    float64
	HasWeight bool

	X, Y  int
	Value float64

	Lat, Lon float64

	Line string
}

func skip(line string) Event {
	return Event{Kind: EventSkip, Line: line}
}
