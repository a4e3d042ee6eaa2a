package domain

// Coordinate is a [lat, lon] pair, serialized as a two-element JSON array.
type Coordinate [2]float64

// MatrixCell is one populated cell of a sparse spatial matrix. Absent cells
// have no explicit representation; their default is left to the consumer.
type MatrixCell struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Value float64 `json:"value"`
}

// ModelDocument is the model-wide summary written to model.json once the
// input stream is exhausted.
//
// TweetMatrix is dense: length granularity²/2, index x + y·granularity,
// entries null until populated. The section-backed fields are pointers to
// slices so that a section that appeared in the input but held no rows still
// serializes as an empty array, while a section that never appeared is
// omitted.
type ModelDocument struct {
	Granularity *int          `json:"granularity,omitempty"`
	WordTypes   int           `json:"wordtypes"`
	TweetMatrix *[]*float64   `json:"tweetsmatrix,omitempty"`
	Centroids   *[]Coordinate `json:"centroids,omitempty"`
	WordMatrix  *[]MatrixCell `json:"wordmatrix,omitempty"`
}

// WordRecord accumulates one word's data between its header and end marker.
// The word string itself is carried by the artifact's file name, never by the
// JSON body: a record with every option flag off serializes as {}.
//
// Weight and WordID are populated only when the corresponding output option
// is on. Coords is created lazily on the first coordinate line, so plain
// omitempty suffices there; Matrix is created when the #MATRIX# sub-header is
// seen and may legitimately be present but empty.
type WordRecord struct {
	Word   string        `json:"-"`
	Weight *float64      `json:"weight,omitempty"`
	WordID *int          `json:"word_id,omitempty"`
	Coords []Coordinate  `json:"coords,omitempty"`
	Matrix *[]MatrixCell `json:"matrix,omitempty"`
}
