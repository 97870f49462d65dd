// Package sitenav holds the scroll-driven state of the single-page site:
// which section the navigation highlights and which carousel arrows are live.
package sitenav

// Section identifiers, in page order.
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionProjects = "projects"
	SectionSkills   = "skills"
)

// DefaultOrder is the order sections appear on the page.
var DefaultOrder = []string{SectionHero, SectionAbout, SectionProjects, SectionSkills}

const (
	// probeOffset accounts for the fixed header.
	probeOffset = 100
	// edgeSlack keeps an arrow disabled until the strip has moved a little.
	edgeSlack = 10
)

// Section is the vertical extent of one page section, in document pixels.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection returns the first section containing scrollY+100. When none
// matches it returns false and the caller keeps its current highlight.
func ActiveSection(scrollY float64, sections []Section) (string, bool) {
	probe := scrollY + probeOffset
	for _, s := range sections {
		if probe >= s.Top && probe < s.Top+s.Height {
			return s.ID, true
		}
	}
	return "", false
}

// Tracker remembers the highlighted section between scroll events.
type Tracker struct {
	active string
}

// NewTracker starts with the first section highlighted.
func NewTracker() *Tracker {
	return &Tracker{active: SectionHero}
}

// Update re-evaluates the highlight for a scroll event and returns it.
func (t *Tracker) Update(scrollY float64, sections []Section) string {
	if id, ok := ActiveSection(scrollY, sections); ok {
		t.active = id
	}
	return t.active
}

// Active returns the current highlight.
func (t *Tracker) Active() string {
	return t.active
}

// Buttons reports which carousel arrows are enabled.
type Buttons struct {
	Left  bool
	Right bool
}

// ScrollButtons computes the arrow state of a horizontal strip.
func ScrollButtons(scrollLeft, scrollWidth, clientWidth float64) Buttons {
	return Buttons{
		Left:  scrollLeft > edgeSlack,
		Right: scrollLeft < scrollWidth-clientWidth-edgeSlack,
	}
}
