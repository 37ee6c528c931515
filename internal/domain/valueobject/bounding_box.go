package valueobject

// ServiceRegion is a coarse box around Vietnam. A point inside it is
// plausibly within the service region, not certainly.
var ServiceRegion = BoundingBox{
	North: 23.393395,
	South: 8.179066,
	East:  109.464211,
	West:  102.144033,
}

type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

func NewBoundingBox(north, south, east, west float64) *BoundingBox {
	return &BoundingBox{
		North: north,
		South: south,
		East:  east,
		West:  west,
	}
}

func (bb BoundingBox) IsValid() bool {
	return bb.South <= bb.North &&
		bb.West <= bb.East &&
		bb.South >= -90 && bb.North <= 90 &&
		bb.West >= -180 && bb.East <= 180
}

// Contains is inclusive on every edge.
func (bb BoundingBox) Contains(lat, lng float64) bool {
	return lat >= bb.South && lat <= bb.North &&
		lng >= bb.West && lng <= bb.East
}

func IsWithinRegion(lat, lng float64) bool {
	return ServiceRegion.Contains(lat, lng)
}
