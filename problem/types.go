package problem

// Problem is one contest task, composed of one or more independently
// submitted and reviewed sections. Section order is display order.
type Problem struct {
	ID          string
	Label       string // grouping letter on the scoreboard
	Number      int
	Title       string
	Description string
	MaxPoints   int
	Sections    []Section
}

type Section struct {
	Key         string
	Title       string
	Description string
	Points      int
}

func (p *Problem) Section(key string) (Section, bool) {
	for _, s := range p.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}
