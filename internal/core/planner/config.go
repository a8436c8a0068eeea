package planner

// Config holds the trip engine tunables. These are policy, not physics: the
// defaults assume one full sightseeing day per destination and at most ten
// hours of travel crammed into a single day.
type Config struct {
	// TourismHoursPerDestination is the sightseeing time budgeted per stop.
	TourismHoursPerDestination float64
	// SightseeingHoursPerDay is how many sightseeing hours fit in one day.
	SightseeingHoursPerDay float64
	// MaxTravelHoursPerDay caps how much travel fits in one calendar day.
	MaxTravelHoursPerDay float64
}

// DefaultConfig returns the standard tunables: 8 h of sightseeing per
// destination, 8 h sightseeing days, 10 h travel days.
func DefaultConfig() Config {
	return Config{
		TourismHoursPerDestination: 8,
		SightseeingHoursPerDay:     8,
		MaxTravelHoursPerDay:       10,
	}
}

// normalized fills zero or negative fields with defaults so that a zero
// Config behaves like DefaultConfig.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.TourismHoursPerDestination <= 0 {
		c.TourismHoursPerDestination = def.TourismHoursPerDestination
	}
	if c.SightseeingHoursPerDay <= 0 {
		c.SightseeingHoursPerDay = def.SightseeingHoursPerDay
	}
	if c.MaxTravelHoursPerDay <= 0 {
		c.MaxTravelHoursPerDay = def.MaxTravelHoursPerDay
	}
	return c
}

// Engine computes trip feasibility, transport recommendations, and day-by-day
// itineraries. It is stateless between calls: every method is a pure function
// of its inputs plus the injected Config, so a single Engine is safe to share
// across goroutines.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given tunables.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg.normalized()}
}
