package tracker

// DefaultReferenceLine is the distance, in pixels from the top of the
// viewport, of the line a section must straddle to be active. It matches the
// height of the fixed navigation bar.
const DefaultReferenceLine = 100.0

// Extent is the vertical on-screen span of a region, measured from the top of
// the viewport. Values may be negative once a region has scrolled past.
type Extent struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Crosses reports whether the extent straddles line.
func (e Extent) Crosses(line float64) bool {
	return e.Top <= line && e.Bottom >= line
}

// Region is a measurable page section.
type Region interface {
	ID() SectionID
	// Extent returns false when the region is not currently laid out.
	Extent() (Extent, bool)
}

type regionFunc struct {
	id      SectionID
	measure func() (Extent, bool)
}

func (r regionFunc) ID() SectionID { return r.id }

func (r regionFunc) Extent() (Extent, bool) {
	if r.measure == nil {
		return Extent{}, false
	}
	return r.measure()
}

// NewRegion adapts a measuring function into a Region.
func NewRegion(id SectionID, measure func() (Extent, bool)) Region {
	return regionFunc{id: id, measure: measure}
}

// Resolve returns the first region, in order, whose extent crosses line.
// When none does, previous is returned unchanged.
func Resolve(regions []Region, line float64, previous SectionID) SectionID {
	for _, region := range regions {
		extent, ok := region.Extent()
		if ok && extent.Crosses(line) {
			return region.ID()
		}
	}
	return previous
}

// Snapshot is one measurement of every mounted region, as reported by a
// browser in a single scroll event.
type Snapshot map[SectionID]Extent

// Regions turns the snapshot into regions in the given order. Sections absent
// from the snapshot report no extent.
func (s Snapshot) Regions(order []SectionID) []Region {
	regions := make([]Region, 0, len(order))
	for _, id := range order {
		id := id
		regions = append(regions, NewRegion(id, func() (Extent, bool) {
			extent, ok := s[id]
			return extent, ok
		}))
	}
	return regions
}
