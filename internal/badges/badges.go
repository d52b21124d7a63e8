// Package badges counts food eaten and awards milestone badges.
package badges

// Milestone is a badge earned after eating a number of food particles.
type Milestone struct {
	ID    string
	Name  string
	Meals int
}

// DefaultMilestones are the badges available in a run, in award order.
var DefaultMilestones = []Milestone{
	{ID: "first-bite", Name: "First Bite", Meals: 1},
	{ID: "forager", Name: "Forager", Meals: 10},
	{ID: "hungry-gull", Name: "Hungry Gull", Meals: 25},
	{ID: "glutton", Name: "Glutton", Meals: 50},
	{ID: "sea-monster", Name: "Sea Monster", Meals: 100},
}

// Tracker counts meals for one run and remembers which milestones were hit.
type Tracker struct {
	milestones []Milestone
	meals      int
	earned     []Milestone
	fresh      []Milestone
}

// NewTracker creates a tracker over milestones. Nil means DefaultMilestones.
func NewTracker(milestones []Milestone) *Tracker {
	if milestones == nil {
		milestones = DefaultMilestones
	}
	return &Tracker{milestones: milestones}
}

// LogFoodConsumption records one eaten food particle.
func (t *Tracker) LogFoodConsumption() {
	t.meals++
	for _, m := range t.milestones {
		if m.Meals == t.meals {
			t.earned = append(t.earned, m)
			t.fresh = append(t.fresh, m)
		}
	}
}

// Meals returns the number of food particles eaten this run.
func (t *Tracker) Meals() int {
	return t.meals
}

// Earned returns the milestones reached this run, oldest first.
func (t *Tracker) Earned() []Milestone {
	out := make([]Milestone, len(t.earned))
	copy(out, t.earned)
	return out
}

// IDs returns the IDs of the earned milestones.
func (t *Tracker) IDs() []string {
	ids := make([]string, 0, len(t.earned))
	for _, m := range t.earned {
		ids = append(ids, m.ID)
	}
	return ids
}

// Drain returns milestones earned since the last call and forgets them.
// The HUD uses it to flash new badges exactly once.
func (t *Tracker) Drain() []Milestone {
	out := t.fresh
	t.fresh = nil
	return out
}

// Reset starts a new run.
func (t *Tracker) Reset() {
	t.meals = 0
	t.earned = nil
	t.fresh = nil
}

// Lookup finds a milestone by ID in DefaultMilestones.
func Lookup(id string) (Milestone, bool) {
	for _, m := range DefaultMilestones {
		if m.ID == id {
			return m, true
		}
	}
	return Milestone{}, false
}
