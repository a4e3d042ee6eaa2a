// Package parser classifies model file lines. It implements the section state
// machine as a pure transition function: given the current state and the next
// input line, [Classify] returns the next state and a typed event describing
// the line's effect. All buffer mutation is left to the consumer, so the
// parser itself carries no state between lines.
package parser

// State identifies the section the parser is currently inside.
type State int

const (
	// StateNone is the top level, expecting a section header.
	StateNone State = iota
	// StateTweetMatrix is inside the global tweet-density matrix section.
	StateTweetMatrix
	// StateCentroids is inside the grid-cell centroid list.
	StateCentroids
	// StateWord is inside a word section, before its optional matrix.
	StateWord
	// StateMatrix is inside a word's sparse matrix sub-section.
	StateMatrix
	// StateNextWord follows a word's matrix end, expecting either another
	// word header or the end of the enclosing model section.
	StateNextWord
	// StateWordMatrix is inside the aggregate word-pair matrix section.
	StateWordMatrix
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateTweetMatrix:
		return "tweetmatrix"
	case StateCentroids:
		return "centroids"
	case StateWord:
		return "word"
	case StateMatrix:
		return "matrix"
	case StateNextWord:
		return "nextword"
	case StateWordMatrix:
		return "wordmatrix"
	}
	return "unknown"
}
