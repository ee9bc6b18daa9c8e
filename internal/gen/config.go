package gen

import "fmt"

// DefaultTeamProbability is the default chance that a list's readers or
// editors reuse one of the fixed default teams instead of minting a fresh
// extra team. Intentionally tiny; tunable rather than hard-coded.
const DefaultTeamProbability = 0.0001

// Range-width bounds for a list's task range, inclusive.
const (
	RangeWidthMin = 5
	RangeWidthMax = 10
)

// maxExtraTeamsPerUser caps how many extra teams a user's membership may
// sample from the accumulated pool.
const maxExtraTeamsPerUser = 3

// Phase names a stage of the population pipeline, reported through the
// Progress callback and carried in error wrap messages.
type Phase string

const (
	PhaseUsers       Phase = "users"
	PhaseLists       Phase = "lists"
	PhaseMemberships Phase = "memberships"
)

// Config holds the scale parameters of one generation run.
type Config struct {
	// Users is the number of users to generate (N).
	Users int
	// Lists is the number of task lists to generate (M).
	Lists int
	// Seed initializes the deterministic random source.
	Seed int64
	// DefaultTeamProbability overrides the default-team reuse chance.
	DefaultTeamProbability float64

	// Progress, if non-nil, is invoked as each phase advances. It must not
	// retain or mutate anything; it exists so a CLI can render progress
	// without the generator importing UI code.
	Progress func(phase Phase, done, total int)
}

// Validate rejects bad scale parameters before any draw happens. Zero
// counts are valid and yield an empty, schema-valid graph.
func (c Config) Validate() error {
	if c.Users < 0 {
		return fmt.Errorf("users must be non-negative, got %d", c.Users)
	}
	if c.Lists < 0 {
		return fmt.Errorf("lists must be non-negative, got %d", c.Lists)
	}
	if c.Lists > 0 && c.Users == 0 {
		return fmt.Errorf("cannot generate %d lists with no users to own them", c.Lists)
	}
	if c.DefaultTeamProbability < 0 || c.DefaultTeamProbability > 1 {
		return fmt.Errorf("default team probability must be in [0,1], got %v", c.DefaultTeamProbability)
	}
	return nil
}

func (c Config) progress(phase Phase, done, total int) {
	if c.Progress != nil {
		c.Progress(phase, done, total)
	}
}
