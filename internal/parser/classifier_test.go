package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_TopLevelHeaders(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantState State
		wantKind  EventKind
	}{
		{"tweet matrix", "#TWEETMATRIX#", StateTweetMatrix, EventTweetMatrixStart},
		{"centroids", "#CENTROIDS#", StateCentroids, EventCentroidsStart},
		{"word matrix", "#WORDMATRIX#", StateWordMatrix, EventWordMatrixStart},
		{"word", "#WORD# 7 alpha", StateWord, EventWordStart},
		{"granularity", "#LONGRANULARITY# 360", StateNone, EventGranularity},
		{"unknown", "something else", StateNone, EventSkip},
		{"stray end marker", "#END#", StateNone, EventSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ev := Classify(StateNone, tt.line)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantKind, ev.Kind)
		})
	}
}

func TestClassify_Granularity(t *testing.T) {
	_, ev := Classify(StateNone, "#LONGRANULARITY# 360\n")
	require.Equal(t, EventGranularity, ev.Kind)
	assert.Equal(t, 360, ev.Granularity)

	_, ev = Classify(StateNone, "#LONGRANULARITY# x")
	assert.Equal(t, EventSkip, ev.Kind)

	_, ev = Classify(StateNone, "#LONGRANULARITY#")
	assert.Equal(t, EventSkip, ev.Kind)

	_, ev = Classify(StateNone, "#LONGRANULARITY# -4")
	assert.Equal(t, EventSkip, ev.Kind)
}

func TestClassify_WordHeader(t *testing.T) {
	state, ev := Classify(StateNone, "#WORD# 7 alpha\n")
	require.Equal(t, StateWord, state)
	require.Equal(t, EventWordStart, ev.Kind)
	assert.Equal(t, "alpha", ev.Word)
	assert.Equal(t, 7, ev.WordID)
	assert.False(t, ev.HasWeight)
	assert.Equal(t, 1.0, ev.Weight)

	_, ev = Classify(StateNone, "#WORD# 7 alpha 0.42")
	require.Equal(t, EventWordStart, ev.Kind)
	assert.True(t, ev.HasWeight)
	assert.Equal(t, 0.42, ev.Weight)
}

func TestClassify_WordHeader_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"non-numeric id", "#WORD# x alpha"},
		{"missing word", "#WORD# 7"},
		{"bad weight", "#WORD# 7 alpha heavy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ev := Classify(StateNone, tt.line)
			assert.Equal(t, StateNone, state)
			assert.Equal(t, EventSkip, ev.Kind)

			// A bad header between words must not leave the nextword state.
			state, ev = Classify(StateNextWord, tt.line)
			assert.Equal(t, StateNextWord, state)
			assert.Equal(t, EventSkip, ev.Kind)
		})
	}
}

func TestClassify_TweetMatrixSection(t *testing.T) {
	state, ev := Classify(StateTweetMatrix, "3 1 2.5e-07")
	require.Equal(t, StateTweetMatrix, state)
	require.Equal(t, EventTweetCell, ev.Kind)
	assert.Equal(t, 3, ev.X)
	assert.Equal(t, 1, ev.Y)
	assert.InEpsilon(t, 2.5e-07, ev.Value, 1e-12)

	// The tweet matrix close only requires the #END prefix.
	state, ev = Classify(StateTweetMatrix, "#END")
	assert.Equal(t, StateNone, state)
	assert.Equal(t, EventSectionEnd, ev.Kind)

	state, ev = Classify(StateTweetMatrix, "#END#")
	assert.Equal(t, StateNone, state)
	assert.Equal(t, EventSectionEnd, ev.Kind)

	state, ev = Classify(StateTweetMatrix, "abc def ghi")
	assert.Equal(t, StateTweetMatrix, state)
	assert.Equal(t, EventSkip, ev.Kind)
}

func TestClassify_CentroidsSection(t *testing.T) {
	state, ev := Classify(StateCentroids, "48.85 2.35")
	require.Equal(t, StateCentroids, state)
	require.Equal(t, EventCentroid, ev.Kind)
	assert.Equal(t, 48.85, ev.Lat)
	assert.Equal(t, 2.35, ev.Lon)

	state, ev = Classify(StateCentroids, "-33.9 1.8e+01")
	require.Equal(t, EventCentroid, ev.Kind)
	assert.Equal(t, -33.9, ev.Lat)
	assert.Equal(t, 18.0, ev.Lon)

	state, ev = Classify(StateCentroids, "#END#")
	assert.Equal(t, StateNone, state)
	assert.Equal(t, EventSectionEnd, ev.Kind)
}

func TestClassify_WordSection(t *testing.T) {
	state, ev := Classify(StateWord, "51.5 -0.12")
	require.Equal(t, StateWord, state)
	require.Equal(t, EventWordCoord, ev.Kind)
	assert.Equal(t, 51.5, ev.Lat)
	assert.Equal(t, -0.12, ev.Lon)

	state, ev = Classify(StateWord, "#MATRIX#")
	assert.Equal(t, StateMatrix, state)
	assert.Equal(t, EventMatrixStart, ev.Kind)

	// A word without a matrix flushes straight back to top level.
	state, ev = Classify(StateWord, "#END#")
	assert.Equal(t, StateNone, state)
	assert.Equal(t, EventWordFlush, ev.Kind)
}

func TestClassify_MatrixSection(t *testing.T) {
	state, ev := Classify(StateMatrix, "12 7 0.033")
	require.Equal(t, StateMatrix, state)
	require.Equal(t, EventMatrixCell, ev.Kind)
	assert.Equal(t, 12, ev.X)
	assert.Equal(t, 7, ev.Y)
	assert.Equal(t, 0.033, ev.Value)

	// Matrix end flushes the word and expects another word header next.
	state, ev = Classify(StateMatrix, "#END#")
	assert.Equal(t, StateNextWord, state)
	assert.Equal(t, EventWordFlush, ev.Kind)
}

func TestClassify_NextWordSection(t *testing.T) {
	// Back-to-back words need no intervening end-of-model marker.
	state, ev := Classify(StateNextWord, "#WORD# 8 beta 0.5")
	require.Equal(t, StateWord, state)
	require.Equal(t, EventWordStart, ev.Kind)
	assert.Equal(t, "beta", ev.Word)

	state, ev = Classify(StateNextWord, "#END#")
	assert.Equal(t, StateNone, state)
	assert.Equal(t, EventWordFlush, ev.Kind)

	state, ev = Classify(StateNextWord, "1 2 3")
	assert.Equal(t, StateNextWord, state)
	assert.Equal(t, EventSkip, ev.Kind)
}

func TestClassify_WordMatrixSection(t *testing.T) {
	state, ev := Classify(StateWordMatrix, "0 0 1e-05")
	require.Equal(t, StateWordMatrix, state)
	require.Equal(t, EventWordMatrixCell, ev.Kind)
	assert.Equal(t, 1e-05, ev.Value)

	state, ev = Classify(StateWordMatrix, "#END#")
	assert.Equal(t, StateNone, state)
	assert.Equal(t, EventSectionEnd, ev.Kind)
}

func TestClassify_SkipKeepsState(t *testing.T) {
	// A malformed line inside a section must not abort or change state;
	// subsequent valid lines are still processed.
	state, ev := Classify(StateMatrix, "abc def ghi")
	require.Equal(t, StateMatrix, state)
	require.Equal(t, EventSkip, ev.Kind)
	assert.Equal(t, "abc def ghi", ev.Line)

	state, ev = Classify(state, "1 1 0.5")
	assert.Equal(t, StateMatrix, state)
	assert.Equal(t, EventMatrixCell, ev.Kind)
}

func TestClassify_NumericEdgeForms(t *testing.T) {
	// Values matching the numeric character class but failing strict float
	// parsing are skipped, not fatal.
	state, ev := Classify(StateTweetMatrix, "1 2 e+e")
	assert.Equal(t, StateTweetMatrix, state)
	assert.Equal(t, EventSkip, ev.Kind)

	state, ev = Classify(StateCentroids, "-- ..")
	assert.Equal(t, StateCentroids, state)
	assert.Equal(t, EventSkip, ev.Kind)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "none", StateNone.String())
	assert.Equal(t, "nextword", StateNextWord.String())
	assert.Equal(t, "unknown", State(99).String())
}
