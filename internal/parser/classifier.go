package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// cellRe matches "x y value" sparse matrix triples.
	cellRe = regexp.MustCompile(`^\d+ \d+ [0-9e.+-]+`)

	// pairRe matches "lat lon" coordinate pairs, including scientific
	// notation and signed values.
	pairRe = regexp.MustCompile(`^[0-9e.+-]+ [0-9e.+-]+`)
)

// Classify advances the state machine by one input line. The returned event
// tells the consumer what the line contained; EventSkip means the line
// matched no pattern for the current state and the state is unchanged.
//
// Lines are tokenized positionally on single spaces. Numeric fields that
// survive the pattern match but fail strict parsing (e.g. "1 2 e+e") also
// classify as EventSkip rather than aborting the run.
func Classify(state State, line string) (State, Event) {
	line = strings.TrimRight(line, " \t\r\n")

	switch state {
	case StateNone:
		return classifyTopLevel(line)
	case StateTweetMatrix:
		return classifyTweetMatrix(line)
	case StateCentroids:
		return classifyCentroids(line)
	case StateWord:
		return classifyWord(line)
	case StateMatrix:
		return classifyMatrix(line)
	case StateNextWord:
		return classifyNextWord(line)
	case StateWordMatrix:
		return classifyWordMatrix(line)
	}
	return state, skip(line)
}

func classifyTopLevel(line string) (State, Event) {
	switch {
	case strings.HasPrefix(line, "#LONGRANULARITY#"):
		fields := strings.Split(line, " ")
		if len(fields) < 2 {
			return StateNone, skip(line)
		}
		g, err := strconv.Atoi(fields[1])
		if err != nil || g <= 0 {
			return StateNone, skip(line)
		}
		return StateNone, Event{Kind: EventGranularity, Granularity: g}
	case strings.HasPrefix(line, "#TWEETMATRIX#"):
		return StateTweetMatrix, Event{Kind: EventTweetMatrixStart}
	case strings.HasPrefix(line, "#CENTROIDS#"):
		return StateCentroids, Event{Kind: EventCentroidsStart}
	case strings.HasPrefix(line, "#WORDMATRIX#"):
		return StateWordMatrix, Event{Kind: EventWordMatrixStart}
	case strings.HasPrefix(line, "#WORD#"):
		if ev, ok := classifyWordHeader(line); ok {
			return StateWord, ev
		}
	}
	return StateNone, skip(line)
}

func classifyTweetMatrix(line string) (State, Event) {
	if cellRe.MatchString(line) {
		if ev, ok := parseCell(line, EventTweetCell); ok {
			return StateTweetMatrix, ev
		}
		return StateTweetMatrix, skip(line)
	}
	// The trainer closes this section with "#END#" like the others, but the
	// format only ever required the "#END" prefix here. Preserved as-is.
	if strings.HasPrefix(line, "#END") {
		return StateNone, Event{Kind: EventSectionEnd}
	}
	return StateTweetMatrix, skip(line)
}

func classifyCentroids(line string) (State, Event) {
	if pairRe.MatchString(line) {
		if ev, ok := parsePair(line, EventCentroid); ok {
			return StateCentroids, ev
		}
		return StateCentroids, skip(line)
	}
	if strings.HasPrefix(line, "#END#") {
		return StateNone, Event{Kind: EventSectionEnd}
	}
	return StateCentroids, skip(line)
}

func classifyWord(line string) (State, Event) {
	if pairRe.MatchString(line) {
		if ev, ok := parsePair(line, EventWordCoord); ok {
			return StateWord, ev
		}
		return StateWord, skip(line)
	}
	if strings.HasPrefix(line, "#MATRIX#") {
		return StateMatrix, Event{Kind: EventMatrixStart}
	}
	if strings.HasPrefix(line, "#END#") {
		return StateNone, Event{Kind: EventWordFlush}
	}
	return StateWord, skip(line)
}

func classifyMatrix(line string) (State, Event) {
	if cellRe.MatchString(line) {
		if ev, ok := parseCell(line, EventMatrixCell); ok {
			return StateMatrix, ev
		}
		return StateMatrix, skip(line)
	}
	if strings.HasPrefix(line, "#END#") {
		return StateNextWord, Event{Kind: EventWordFlush}
	}
	return StateMatrix, skip(line)
}

func classifyNextWord(line string) (State, Event) {
	if strings.HasPrefix(line, "#WORD#") {
		if ev, ok := classifyWordHeader(line); ok {
			return StateWord, ev
		}
		return StateNextWord, skip(line)
	}
	if strings.HasPrefix(line, "#END#") {
		// Closing the enclosing model section re-flushes the last word
		// record, which is idempotent: same path, same content.
		return StateNone, Event{Kind: EventWordFlush}
	}
	return StateNextWord, skip(line)
}

func classifyWordMatrix(line string) (State, Event) {
	if cellRe.MatchString(line) {
		if ev, ok := parseCell(line, EventWordMatrixCell); ok {
			return StateWordMatrix, ev
		}
		return StateWordMatrix, skip(line)
	}
	if strings.HasPrefix(line, "#END#") {
		return StateNone, Event{Kind: EventSectionEnd}
	}
	return StateWordMatrix, skip(line)
}

// classifyWordHeader parses "#WORD# <id> <word> [weight]". The weight field
// defaults to 1.0 when the header has exactly three fields; any other field
// count or a non-numeric id fails classification.
func classifyWordHeader(line string) (Event, bool) {
	fields := strings.Split(line, " ")
	if len(fields) < 3 {
		return Event{}, false
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Event{}, false
	}
	ev := Event{
		Kind:   EventWordStart,
		Word:   fields[2],
		WordID: id,
		Weight: 1.0,
	}
	if len(fields) == 4 {
		w, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return Event{}, false
		}
		ev.Weight = w
		ev.HasWeight = true
	}
	return ev, true
}

func parseCell(line string, kind EventKind) (Event, bool) {
	fields := strings.Split(line, " ")
	if len(fields) < 3 {
		return Event{}, false
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	v, errV := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil || errV != nil {
		return Event{}, false
	}
	return Event{Kind: kind, X: x, Y: y, Value: v}, true
}

func parsePair(line string, kind EventKind) (Event, bool) {
	fields := strings.Split(line, " ")
	if len(fields) < 2 {
		return Event{}, false
	}
	lat, errLat := strconv.ParseFloat(fields[0], 64)
	lon, errLon := strconv.ParseFloat(fields[1], 64)
	if errLat != nil || errLon != nil {
		return Event{}, false
	}
	return Event{Kind: kind, Lat: lat, Lon: lon}, true
}
