package entity

// Vertex is one corner of a bounding polygon.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox carries the absolute and normalized vertex lists exactly as
// reported by the extraction service. The payload is opaque to validation
// and is stored verbatim.
type BoundingBox struct {
	Vertices           []Vertex `json:"vertices"`
	NormalizedVertices []Vertex `json:"normalized_vertices"`
}

// EntityRecord is one extracted field candidate. Names are not unique: the
// extraction service may emit the same field several times (repeated line
// items, extraction ambiguity), and that is expected input, not an error.
type EntityRecord struct {
	Name        string       `json:"name"`
	Value       string       `json:"value"`
	Confidence  float64      `json:"confidence"`
	PageNumber  *int         `json:"page_number,omitempty"`
	BoundingBox *BoundingBox `json:"bounding_box,omitempty"`
}
