package gen

import (
	"fmt"
	"math"

	"todoseed/pkg/domain"
)

// generator carries the mutable state of one run: the deterministic source,
// the fixed default teams, and the shared extra-team pool accumulated while
// building lists.
type generator struct {
	cfg      Config
	src      *Source
	defaults defaultTeams
	pool     []*domain.Team
}

// Generate assembles the full entity graph for cfg. The draw order is
// totally fixed — users, then lists (accumulating the extra-team pool), then
// user memberships — because reordering any draw changes every subsequent
// draw and breaks reproducibility.
func Generate(cfg Config) (*domain.Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("phase config: %w", err)
	}
	g := &generator{
		cfg:      cfg,
		src:      NewSource(cfg.Seed),
		defaults: newDefaultTeams(),
	}

	users := make([]*domain.User, 0, cfg.Users)
	for i := 0; i < cfg.Users; i++ {
		users = append(users, g.newUser())
		cfg.progress(PhaseUsers, i+1, cfg.Users)
	}

	lists := make([]*domain.TaskList, 0, cfg.Lists)
	for i := 0; i < cfg.Lists; i++ {
		lists = append(lists, g.newList(users))
		cfg.progress(PhaseLists, i+1, cfg.Lists)
	}

	// Memberships are assigned only after all lists exist: sampling needs
	// the complete extra-team pool.
	for i, user := range users {
		user.Teams = g.memberTeams()
		cfg.progress(PhaseMemberships, i+1, cfg.Users)
	}

	return &domain.Graph{
		Users:        users,
		DefaultTeams: g.defaults.all(),
		ExtraTeams:   g.pool,
		Lists:        lists,
	}, nil
}

// newUser allocates an identity and a display name; the membership set stays
// empty until the assembly phase.
func (g *generator) newUser() *domain.User {
	uid := g.src.NextID()
	return &domain.User{UID: uid, Name: fullName(g.src)}
}

// newList picks a uniformly random owner, derives readers and editors (each
// call may mint a new extra team into the shared pool), and draws a range
// start in [2^63, 2^64) with a width of 5-10.
func (g *generator) newList(users []*domain.User) *domain.TaskList {
	owner := users[g.src.Intn(len(users))]
	readers := g.randomTeamOrExisting()
	editors := g.randomTeamOrExisting()
	start := g.src.Uint64() | 1<<63
	width := uint64(g.src.IntBetween(RangeWidthMin, RangeWidthMax))
	// The original relies on bignums for start+width; here start is nudged
	// down in the vanishingly rare case the end would wrap.
	if start > math.MaxUint64-width {
		start = math.MaxUint64 - width
	}
	return domain.NewTaskList(g.src.NextID(), owner, readers, editors, start, start+width)
}

// memberTeams chooses one of the three fixed default-team bundles uniformly,
// then appends 0-3 extra teams sampled without replacement from the pool.
// Bundle teams come first, sampled extras after, preserving draw order.
func (g *generator) memberTeams() []*domain.Team {
	bundles := g.defaults.bundles()
	bundle := bundles[g.src.Intn(len(bundles))]
	extras := g.sampleExtraTeams(maxExtraTeamsPerUser)
	teams := make([]*domain.Team, 0, len(bundle)+len(extras))
	teams = append(teams, bundle...)
	teams = append(teams, extras...)
	return teams
}
