// Package domain models geolocation language model data.
//
// # The model file format
//
// A geoloc model is a line-oriented text file, usually gzip-compressed,
// produced by the model trainer. It describes, for a square spatial grid of
// side length "granularity" (longitude bins; latitude bins = granularity/2),
// a global tweet-density matrix, a list of grid-cell centroids, one sparse
// probability matrix per word, and an optional aggregate word-pair matrix.
//
// Sections are introduced by header lines and closed by an end marker:
//
//	#LONGRANULARITY# <n>
//	#TWEETMATRIX#        ... "x y value" triples ...       #END
//	#CENTROIDS#          ... "lat lon" pairs ...           #END#
//	#WORD# <id> <word> [weight]
//	                     ... "lat lon" pairs ...
//	  #MATRIX#           ... "x y value" triples ...       #END#
//	#WORDMATRIX#         ... "x y value" triples ...       #END#
//
// Fields within a line are separated by single spaces, and numeric fields may
// use integer or scientific-notation forms ("1e-05"). The tweet-matrix section
// is closed by any line starting with "#END" (no trailing "#" required); every
// other section requires the "#END#" prefix. After a word's matrix section,
// the next "#WORD#" header may follow immediately, so back-to-back words share
// one enclosing model section.
//
// This grammar is an external contract shared with the trainer that emits it.
// It must be parsed by positional splitting on single spaces exactly as
// specified here, brittle as that is; "improving" it would break compatibility
// with existing model files.
//
// # JSON output
//
// The converter emits one JSON document per word plus a model-wide summary.
// [WordRecord] and [ModelDocument] define those shapes. Optional fields are
// omitted entirely when their corresponding flag is off; sections that were
// present but empty in the input serialize as empty arrays, which is why the
// section-backed fields are pointers to slices.
package domain
